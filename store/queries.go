package store

import (
	"time"

	"training-store-go/models"
)

// Layout of TrainingSession.Date values.
const sessionDateLayout = "2006-01-02"

// --- Statistics ---

// GetStatistics counts bookings, students, active courses, campuses and
// upcoming sessions (session date on or after today). Sessions whose date
// does not parse are not counted as upcoming. Pure read.
func (s *Store) GetStatistics() models.Statistics {
	stats := models.Statistics{
		TotalBookings: len(s.bookings),
		TotalStudents: len(s.students),
		TotalCampuses: len(s.campuses),
	}
	for _, c := range s.courses {
		if c.Status == models.StatusActive {
			stats.ActiveCourses++
		}
	}

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	for _, t := range s.sessions {
		date, err := time.Parse(sessionDateLayout, t.Date)
		if err != nil {
			continue
		}
		if !date.Before(today) {
			stats.UpcomingSessions++
		}
	}
	return stats
}

// --- Authentication ---

// Built-in back-office accounts. This is a placeholder until a real
// identity provider exists; passwords are deliberately plain text.
var users = []models.User{
	{Username: "admin", Password: "admin123", Role: "admin", DisplayName: "Administrator"},
	{Username: "reception", Password: "reception2024", Role: "staff", DisplayName: "Reception Desk"},
}

// Authenticate checks the credentials against the built-in accounts and
// returns the matching user, or nil when neither pair matches.
func (s *Store) Authenticate(username, password string) *models.User {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			match := u
			return &match
		}
	}
	return nil
}
