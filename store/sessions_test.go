package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-store-go/models"
)

func TestAddTrainingSessionDefaults(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddTrainingSession(models.TrainingSession{
		CourseID: 1,
		CampusID: 2,
		Date:     "2026-11-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, added.ID)
	assert.Equal(t, "Forklift Operator Certification", added.CourseName)
	assert.Equal(t, "Northgate Depot", added.CampusName)
	assert.Equal(t, 12, added.MaxCapacity) // copied from the course
	assert.Equal(t, 0, added.Enrolled)
	assert.Equal(t, models.StatusScheduled, added.Status)
}

func TestAddTrainingSessionCallerValuesWin(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddTrainingSession(models.TrainingSession{
		CourseID:    1,
		CampusID:    1,
		Date:        "2026-11-09",
		Enrolled:    4,
		MaxCapacity: 8,
		Status:      "draft",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, added.Enrolled)
	assert.Equal(t, 8, added.MaxCapacity)
	assert.Equal(t, "draft", added.Status)
}

func TestAddTrainingSessionMissingReferences(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddTrainingSession(models.TrainingSession{
		CourseID: 77,
		CampusID: 88,
		Date:     "2026-12-01",
	})
	require.NoError(t, err)

	// Missing referents degrade gracefully instead of failing the add.
	assert.Empty(t, added.CourseName)
	assert.Empty(t, added.CampusName)
	assert.Equal(t, defaultSessionCapacity, added.MaxCapacity)
}

func TestSessionNamesAreNotRefreshed(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateCourse(1, models.CoursePatch{Name: strPtr("Renamed Course")})
	require.NoError(t, err)
	_, err = s.UpdateCampus(1, models.CampusPatch{Name: strPtr("Renamed Campus")})
	require.NoError(t, err)

	session := s.GetTrainingSessionByID(1)
	require.NotNil(t, session)
	assert.Equal(t, "Forklift Operator Certification", session.CourseName)
	assert.Equal(t, "Riverside Training Centre", session.CampusName)
}

func TestUpdateAndDeleteTrainingSession(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.UpdateTrainingSession(1, models.SessionPatch{
		Date:   strPtr("2026-09-28"),
		Status: strPtr("cancelled"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "2026-09-28", updated.Date)
	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, "Forklift Operator Certification", updated.CourseName)

	missing, err := s.UpdateTrainingSession(50, models.SessionPatch{Status: strPtr("cancelled")})
	require.NoError(t, err)
	assert.Nil(t, missing)

	found, err := s.DeleteTrainingSession(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Nil(t, s.GetTrainingSessionByID(1))

	found, err = s.DeleteTrainingSession(1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchTrainingSessions(t *testing.T) {
	s := newTestStore(t)

	assert.Len(t, s.SearchTrainingSessions("forklift"), 2)
	assert.Len(t, s.SearchTrainingSessions("northgate"), 1)
	assert.Len(t, s.SearchTrainingSessions("2026-09"), 2)
	assert.Len(t, s.SearchTrainingSessions("scheduled"), 3)
	assert.Empty(t, s.SearchTrainingSessions("cancelled"))
}
