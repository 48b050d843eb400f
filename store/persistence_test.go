package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"training-store-go/db"
	"training-store-go/models"
)

func TestRestoreFromSlot(t *testing.T) {
	slot := db.NewMemorySlot()

	first, err := New(slot, zap.NewNop())
	require.NoError(t, err)
	added, err := first.AddCourse(models.Course{Name: "Confined Space Entry"})
	require.NoError(t, err)

	second, err := New(slot, zap.NewNop())
	require.NoError(t, err)

	restored := second.GetCourseByID(added.ID)
	require.NotNil(t, restored)
	assert.Equal(t, "Confined Space Entry", restored.Name)
	assert.Len(t, second.GetAllCourses(), 4)
}

func TestCorruptSlotFailsConstruction(t *testing.T) {
	slot := db.NewMemorySlot()
	require.NoError(t, slot.Save([]byte(`{"courses": [{{`)))

	_, err := New(slot, zap.NewNop())
	assert.Error(t, err)
}

func TestPartialSnapshotFallsBackToSeed(t *testing.T) {
	slot := db.NewMemorySlot()
	require.NoError(t, slot.Save([]byte(`{"students": [{"id": 7, "firstName": "Lena", "lastName": "Fischer"}]}`)))

	s, err := New(slot, zap.NewNop())
	require.NoError(t, err)

	// The persisted collection replaces the seed, the missing ones keep it.
	require.Len(t, s.GetAllStudents(), 1)
	assert.Equal(t, 7, s.GetAllStudents()[0].ID)
	assert.Len(t, s.GetAllCourses(), 3)
	assert.Len(t, s.GetAllCampuses(), 3)
	assert.Len(t, s.GetAllTrainingSessions(), 3)
}

func TestEmptiedCollectionSurvivesRestore(t *testing.T) {
	slot := db.NewMemorySlot()

	first, err := New(slot, zap.NewNop())
	require.NoError(t, err)
	for _, id := range []int{1, 2, 3} {
		found, err := first.DeleteCourse(id)
		require.NoError(t, err)
		require.True(t, found)
	}

	// An emptied collection must restore as empty, not fall back to seed.
	second, err := New(slot, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, second.GetAllCourses())
	assert.Len(t, second.GetAllCampuses(), 3)
}

func TestReadsDoNotPersist(t *testing.T) {
	slot := db.NewMemorySlot()

	s, err := New(slot, zap.NewNop())
	require.NoError(t, err)

	s.GetAllCourses()
	s.SearchCourses("forklift")
	s.GetStatistics()

	_, found, err := slot.Load()
	require.NoError(t, err)
	assert.False(t, found)
}
