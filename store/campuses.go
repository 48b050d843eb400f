package store

import (
	"go.uber.org/zap"

	"training-store-go/models"
)

// --- Campus Operations ---

// AddCampus assigns the next id, defaults the status to active and persists.
func (s *Store) AddCampus(campus models.Campus) (models.Campus, error) {
	campus.ID = nextID(s.campuses, func(c models.Campus) int { return c.ID })
	if campus.Status == "" {
		campus.Status = models.StatusActive
	}

	s.campuses = append(s.campuses, campus)
	err := s.persist()
	s.log.Info("campus added", zap.Int("id", campus.ID), zap.String("name", campus.Name))
	return campus, err
}

// UpdateCampus merges the patch over the existing record. Returns nil when
// the id does not exist. Sessions keep the campus name they were created
// with; renaming here does not touch them.
func (s *Store) UpdateCampus(id int, patch models.CampusPatch) (*models.Campus, error) {
	for i := range s.campuses {
		if s.campuses[i].ID != id {
			continue
		}
		c := &s.campuses[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}

		err := s.persist()
		updated := *c
		return &updated, err
	}
	return nil, nil
}

// DeleteCampus removes the campus and reports whether it existed.
func (s *Store) DeleteCampus(id int) (bool, error) {
	for i := range s.campuses {
		if s.campuses[i].ID == id {
			s.campuses = append(s.campuses[:i], s.campuses[i+1:]...)
			err := s.persist()
			s.log.Info("campus deleted", zap.Int("id", id))
			return true, err
		}
	}
	return false, nil
}

// GetCampusByID returns a copy of the campus, or nil when not found.
func (s *Store) GetCampusByID(id int) *models.Campus {
	for i := range s.campuses {
		if s.campuses[i].ID == id {
			c := s.campuses[i]
			return &c
		}
	}
	return nil
}

// GetAllCampuses returns every campus.
func (s *Store) GetAllCampuses() []models.Campus {
	return s.campuses
}
