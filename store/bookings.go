package store

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"training-store-go/models"
)

// --- Student Operations ---

// AddStudent assigns the next id, stamps the registration date, defaults the
// status to active and persists.
func (s *Store) AddStudent(student models.Student) (models.Student, error) {
	student.ID = nextID(s.students, func(st models.Student) int { return st.ID })
	student.RegistrationDate = s.now()
	if student.Status == "" {
		student.Status = models.StatusActive
	}

	s.students = append(s.students, student)
	err := s.persist()
	s.log.Info("student added", zap.Int("id", student.ID), zap.String("email", student.Email))
	return student, err
}

// GetStudentByID returns a copy of the student, or nil when not found.
func (s *Store) GetStudentByID(id int) *models.Student {
	for i := range s.students {
		if s.students[i].ID == id {
			st := s.students[i]
			return &st
		}
	}
	return nil
}

// GetAllStudents returns every student.
func (s *Store) GetAllStudents() []models.Student {
	return s.students
}

// SearchStudents matches the query case-insensitively against first name,
// last name and email.
func (s *Store) SearchStudents(query string) []models.Student {
	q := strings.ToLower(query)
	matches := []models.Student{}
	for _, st := range s.students {
		if containsFold(st.FirstName, q) || containsFold(st.LastName, q) || containsFold(st.Email, q) {
			matches = append(matches, st)
		}
	}
	return matches
}

// --- Booking Operations ---

// CreateBooking generates the confirmation code, assigns the next id, stamps
// the booking date, defaults the status to confirmed and persists. When the
// referenced session exists its enrolled counter goes up by exactly one;
// an unknown session id is a silent no-op. There is no capacity check, so a
// session can be booked past MaxCapacity, and codes are random enough for
// the booking desk but not guaranteed globally unique.
func (s *Store) CreateBooking(booking models.Booking) (models.Booking, error) {
	booking.ID = nextID(s.bookings, func(b models.Booking) int { return b.ID })
	booking.ConfirmationCode = s.confirmationCode()
	booking.BookingDate = s.now()
	if booking.Status == "" {
		booking.Status = models.StatusConfirmed
	}

	s.bookings = append(s.bookings, booking)
	for i := range s.sessions {
		if s.sessions[i].ID == booking.SessionID {
			s.sessions[i].Enrolled++
			break
		}
	}

	err := s.persist()
	s.log.Info("booking created",
		zap.Int("id", booking.ID),
		zap.String("confirmationCode", booking.ConfirmationCode),
		zap.Int("sessionId", booking.SessionID))
	return booking, err
}

// GetBookingByConfirmationCode returns the booking with the exact code, or
// nil when no booking matches.
func (s *Store) GetBookingByConfirmationCode(code string) *models.Booking {
	for i := range s.bookings {
		if s.bookings[i].ConfirmationCode == code {
			b := s.bookings[i]
			return &b
		}
	}
	return nil
}

// GetAllBookings returns every booking.
func (s *Store) GetAllBookings() []models.Booking {
	return s.bookings
}

// confirmationCode builds a VD<YYYYMMDD><4 random digits> code.
func (s *Store) confirmationCode() string {
	return fmt.Sprintf("VD%s%04d", s.now().Format("20060102"), rand.Intn(10000))
}
