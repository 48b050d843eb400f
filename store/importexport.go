package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"training-store-go/models"
)

// Fixed export filenames per collection kind.
const (
	exportFileCourses  = "courses_export.json"
	exportFileStudents = "students_export.json"
	exportFileBookings = "bookings_export.json"
	exportFileSessions = "training_sessions_export.json"
	exportFileComplete = "complete_export.json"
)

// --- JSON Export / Import ---

// ExportData serializes one collection for the recognized kinds, or the
// whole five-collection graph for any other kind, pretty-printed with
// two-space indentation. Returns the fixed filename for the kind along with
// the content. Pure read.
func (s *Store) ExportData(kind string) (string, []byte, error) {
	var (
		filename string
		payload  any
	)
	switch kind {
	case "courses":
		filename, payload = exportFileCourses, emptyIfNil(s.courses)
	case "students":
		filename, payload = exportFileStudents, emptyIfNil(s.students)
	case "bookings":
		filename, payload = exportFileBookings, emptyIfNil(s.bookings)
	case "sessions":
		filename, payload = exportFileSessions, emptyIfNil(s.sessions)
	default:
		filename, payload = exportFileComplete, s.snapshot()
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize %s export: %w", kind, err)
	}
	return filename, data, nil
}

// ImportData parses the payload and replaces the target collection
// wholesale, or, for any unrecognized kind (the complete form), replaces
// each collection present in the payload. Persists and reports true on
// success; a payload that fails to parse leaves the store untouched and
// reports false.
func (s *Store) ImportData(data []byte, kind string) bool {
	switch kind {
	case "courses":
		var items []models.Course
		if err := json.Unmarshal(data, &items); err != nil {
			s.log.Error("course import rejected", zap.Error(err))
			return false
		}
		s.courses = items
	case "students":
		var items []models.Student
		if err := json.Unmarshal(data, &items); err != nil {
			s.log.Error("student import rejected", zap.Error(err))
			return false
		}
		s.students = items
	case "bookings":
		var items []models.Booking
		if err := json.Unmarshal(data, &items); err != nil {
			s.log.Error("booking import rejected", zap.Error(err))
			return false
		}
		s.bookings = items
	case "sessions":
		var items []models.TrainingSession
		if err := json.Unmarshal(data, &items); err != nil {
			s.log.Error("session import rejected", zap.Error(err))
			return false
		}
		s.sessions = items
	default:
		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			s.log.Error("complete import rejected", zap.Error(err))
			return false
		}
		if snap.Courses != nil {
			s.courses = snap.Courses
		}
		if snap.Campuses != nil {
			s.campuses = snap.Campuses
		}
		if snap.TrainingSessions != nil {
			s.sessions = snap.TrainingSessions
		}
		if snap.Students != nil {
			s.students = snap.Students
		}
		if snap.Bookings != nil {
			s.bookings = snap.Bookings
		}
	}

	if err := s.persist(); err != nil {
		return false
	}
	s.log.Info("import applied", zap.String("kind", kind))
	return true
}

// --- Excel Import ---

// ImportStudentsFromExcel reads the first sheet of an XLSX workbook and adds
// one student per data row. Expected columns: first name, last name, email,
// phone; the first row is treated as a header. Rows missing a first or last
// name are skipped. Returns the number of students imported.
func (s *Store) ImportStudentsFromExcel(file io.Reader) (int, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return 0, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn("error closing excel file", zap.Error(err))
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return 0, errors.New("excel file does not contain any sheets")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	imported := 0
	for i, row := range rows {
		if i == 0 {
			continue // Skip header row
		}

		var student models.Student
		if len(row) > 0 {
			student.FirstName = row[0]
		}
		if len(row) > 1 {
			student.LastName = row[1]
		}
		if len(row) > 2 {
			student.Email = row[2]
		}
		if len(row) > 3 {
			student.Phone = row[3]
		}

		if student.FirstName == "" || student.LastName == "" {
			s.log.Warn("skipping row with missing name", zap.Int("row", i+1))
			continue
		}

		if _, err := s.AddStudent(student); err != nil {
			s.log.Error("failed to add imported student", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		imported++
	}

	s.log.Info("excel import finished", zap.Int("imported", imported), zap.String("sheet", sheetName))
	return imported, nil
}
