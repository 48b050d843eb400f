package store

import (
	"strings"

	"go.uber.org/zap"

	"training-store-go/models"
)

// Capacity used when a session references a course that does not exist.
const defaultSessionCapacity = 10

// --- Training Session Operations ---

// AddTrainingSession resolves the referenced course and campus best-effort:
// a missing referent leaves the denormalized name empty instead of failing
// the operation. CourseName and CampusName are snapshots taken here and are
// never refreshed, so later renames do not propagate. Caller-supplied values
// win over the defaults.
func (s *Store) AddTrainingSession(session models.TrainingSession) (models.TrainingSession, error) {
	session.ID = nextID(s.sessions, func(t models.TrainingSession) int { return t.ID })

	course := s.GetCourseByID(session.CourseID)
	if course != nil {
		if session.CourseName == "" {
			session.CourseName = course.Name
		}
		if session.MaxCapacity == 0 {
			session.MaxCapacity = course.MaxCapacity
		}
	} else {
		s.log.Warn("session references unknown course", zap.Int("courseId", session.CourseID))
		if session.MaxCapacity == 0 {
			session.MaxCapacity = defaultSessionCapacity
		}
	}

	campus := s.GetCampusByID(session.CampusID)
	if campus != nil {
		if session.CampusName == "" {
			session.CampusName = campus.Name
		}
	} else {
		s.log.Warn("session references unknown campus", zap.Int("campusId", session.CampusID))
	}

	if session.Status == "" {
		session.Status = models.StatusScheduled
	}

	s.sessions = append(s.sessions, session)
	err := s.persist()
	s.log.Info("training session added",
		zap.Int("id", session.ID),
		zap.String("course", session.CourseName),
		zap.String("date", session.Date))
	return session, err
}

// UpdateTrainingSession merges the patch over the existing record. Returns
// nil when the id does not exist.
func (s *Store) UpdateTrainingSession(id int, patch models.SessionPatch) (*models.TrainingSession, error) {
	for i := range s.sessions {
		if s.sessions[i].ID != id {
			continue
		}
		t := &s.sessions[i]
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Enrolled != nil {
			t.Enrolled = *patch.Enrolled
		}
		if patch.MaxCapacity != nil {
			t.MaxCapacity = *patch.MaxCapacity
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}

		err := s.persist()
		updated := *t
		return &updated, err
	}
	return nil, nil
}

// DeleteTrainingSession removes the session and reports whether it existed.
func (s *Store) DeleteTrainingSession(id int) (bool, error) {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			err := s.persist()
			s.log.Info("training session deleted", zap.Int("id", id))
			return true, err
		}
	}
	return false, nil
}

// GetTrainingSessionByID returns a copy of the session, or nil when not found.
func (s *Store) GetTrainingSessionByID(id int) *models.TrainingSession {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			t := s.sessions[i]
			return &t
		}
	}
	return nil
}

// GetAllTrainingSessions returns every session.
func (s *Store) GetAllTrainingSessions() []models.TrainingSession {
	return s.sessions
}

// SearchTrainingSessions matches the query case-insensitively against course
// name, campus name, date and status.
func (s *Store) SearchTrainingSessions(query string) []models.TrainingSession {
	q := strings.ToLower(query)
	matches := []models.TrainingSession{}
	for _, t := range s.sessions {
		if containsFold(t.CourseName, q) || containsFold(t.CampusName, q) ||
			containsFold(t.Date, q) || containsFold(t.Status, q) {
			matches = append(matches, t)
		}
	}
	return matches
}
