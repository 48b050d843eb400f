package store

import (
	"strings"

	"go.uber.org/zap"

	"training-store-go/models"
)

// --- Course Operations ---

// AddCourse assigns the next id, defaults the status to active, stamps the
// timestamps and persists. The stored record is returned.
func (s *Store) AddCourse(course models.Course) (models.Course, error) {
	course.ID = nextID(s.courses, func(c models.Course) int { return c.ID })
	if course.Status == "" {
		course.Status = models.StatusActive
	}
	now := s.now()
	course.CreatedAt = now
	course.UpdatedAt = now

	s.courses = append(s.courses, course)
	err := s.persist()
	s.log.Info("course added", zap.Int("id", course.ID), zap.String("name", course.Name))
	return course, err
}

// UpdateCourse merges the patch field-by-field over the existing record and
// refreshes UpdatedAt. Returns nil when the id does not exist.
func (s *Store) UpdateCourse(id int, patch models.CoursePatch) (*models.Course, error) {
	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		c := &s.courses[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Duration != nil {
			c.Duration = *patch.Duration
		}
		if patch.Price != nil {
			c.Price = *patch.Price
		}
		if patch.MaxCapacity != nil {
			c.MaxCapacity = *patch.MaxCapacity
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Image != nil {
			c.Image = *patch.Image
		}
		if patch.Code != nil {
			c.Code = *patch.Code
		}
		if patch.Category != nil {
			c.Category = *patch.Category
		}
		if patch.Campuses != nil {
			c.Campuses = patch.Campuses
		}
		c.UpdatedAt = s.now()

		err := s.persist()
		updated := *c
		return &updated, err
	}
	return nil, nil
}

// DeleteCourse removes the course and reports whether it existed. Nothing is
// persisted when the id is unknown.
func (s *Store) DeleteCourse(id int) (bool, error) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			err := s.persist()
			s.log.Info("course deleted", zap.Int("id", id))
			return true, err
		}
	}
	return false, nil
}

// GetCourseByID returns a copy of the course, or nil when not found.
func (s *Store) GetCourseByID(id int) *models.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			c := s.courses[i]
			return &c
		}
	}
	return nil
}

// GetAllCourses returns every course.
func (s *Store) GetAllCourses() []models.Course {
	return s.courses
}

// SearchCourses matches the query case-insensitively against name,
// description, code and category.
func (s *Store) SearchCourses(query string) []models.Course {
	q := strings.ToLower(query)
	matches := []models.Course{}
	for _, c := range s.courses {
		if containsFold(c.Name, q) || containsFold(c.Description, q) ||
			containsFold(c.Code, q) || containsFold(c.Category, q) {
			matches = append(matches, c)
		}
	}
	return matches
}

// GetCoursesByCategory returns the courses in the given category.
func (s *Store) GetCoursesByCategory(category string) []models.Course {
	matches := []models.Course{}
	for _, c := range s.courses {
		if strings.EqualFold(c.Category, category) {
			matches = append(matches, c)
		}
	}
	return matches
}

// GetCoursesByCampus returns the courses offered at the given campus.
func (s *Store) GetCoursesByCampus(campusID int) []models.Course {
	matches := []models.Course{}
	for _, c := range s.courses {
		for _, id := range c.Campuses {
			if id == campusID {
				matches = append(matches, c)
				break
			}
		}
	}
	return matches
}
