package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-store-go/models"
)

func TestAddStudentDefaults(t *testing.T) {
	s := newTestStore(t)
	stamp := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return stamp }

	added, err := s.AddStudent(models.Student{
		FirstName: "Priya",
		LastName:  "Shah",
		Email:     "priya.shah@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, added.ID)
	assert.Equal(t, models.StatusActive, added.Status)
	assert.Equal(t, stamp, added.RegistrationDate)

	second, err := s.AddStudent(models.Student{FirstName: "Tomas", LastName: "Lindqvist"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestSearchStudents(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddStudent(models.Student{FirstName: "Priya", LastName: "Shah", Email: "priya.shah@example.com"})
	require.NoError(t, err)
	_, err = s.AddStudent(models.Student{FirstName: "Tomas", LastName: "Lindqvist", Email: "tomas@example.com"})
	require.NoError(t, err)

	assert.Len(t, s.SearchStudents("priya"), 1)
	assert.Len(t, s.SearchStudents("LINDQVIST"), 1)
	assert.Len(t, s.SearchStudents("example.com"), 2)
	assert.Empty(t, s.SearchStudents("nguyen"))
}

func TestCreateBookingIncrementsEnrollment(t *testing.T) {
	s := newTestStore(t)

	booking, err := s.CreateBooking(models.Booking{SessionID: 1, FirstName: "Priya", LastName: "Shah"})
	require.NoError(t, err)
	assert.Equal(t, 1, booking.ID)
	assert.Equal(t, models.StatusConfirmed, booking.Status)

	session := s.GetTrainingSessionByID(1)
	require.NotNil(t, session)
	assert.Equal(t, 1, session.Enrolled)

	// Other sessions are untouched.
	assert.Equal(t, 0, s.GetTrainingSessionByID(2).Enrolled)
	assert.Equal(t, 0, s.GetTrainingSessionByID(3).Enrolled)
}

func TestCreateBookingUnknownSession(t *testing.T) {
	s := newTestStore(t)

	booking, err := s.CreateBooking(models.Booking{SessionID: 99})
	require.NoError(t, err)
	assert.Equal(t, 1, booking.ID)

	// The booking is kept but no enrolled counter moves.
	for _, sess := range s.GetAllTrainingSessions() {
		assert.Equal(t, 0, sess.Enrolled)
	}
}

func TestCreateBookingAllowsOverbooking(t *testing.T) {
	s := newTestStore(t)
	capacity := s.GetTrainingSessionByID(2).MaxCapacity

	for i := 0; i < capacity+2; i++ {
		_, err := s.CreateBooking(models.Booking{SessionID: 2})
		require.NoError(t, err)
	}

	// No capacity check exists; the counter just keeps going.
	assert.Equal(t, capacity+2, s.GetTrainingSessionByID(2).Enrolled)
}

func TestConfirmationCodeFormat(t *testing.T) {
	s := newTestStore(t)
	s.now = func() time.Time { return time.Date(2025, 3, 5, 11, 45, 0, 0, time.UTC) }

	booking, err := s.CreateBooking(models.Booking{SessionID: 1})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^VD20250305\d{4}$`), booking.ConfirmationCode)
}

func TestGetBookingByConfirmationCode(t *testing.T) {
	s := newTestStore(t)

	booking, err := s.CreateBooking(models.Booking{SessionID: 1, Email: "priya.shah@example.com"})
	require.NoError(t, err)

	found := s.GetBookingByConfirmationCode(booking.ConfirmationCode)
	require.NotNil(t, found)
	assert.Equal(t, booking.ID, found.ID)

	assert.Nil(t, s.GetBookingByConfirmationCode("VD000000000000"))
}
