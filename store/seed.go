package store

import "training-store-go/models"

// seed populates the collections with the fixed data the application ships
// with: three courses, three campuses, three scheduled sessions, and empty
// student and booking lists. Restored data replaces it when present.
func (s *Store) seed() {
	now := s.now()

	s.courses = []models.Course{
		{
			ID:          1,
			Name:        "Forklift Operator Certification",
			Description: "Counterbalance forklift training and certification for new operators",
			Duration:    "2 days",
			Price:       299,
			MaxCapacity: 12,
			Status:      models.StatusActive,
			Image:       "images/forklift-operator.jpg",
			Code:        "FLT-101",
			Category:    "forklift",
			Campuses:    []int{1, 2},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			Name:        "Advanced Forklift Safety Refresher",
			Description: "One-day refresher covering load handling, inspections and site safety",
			Duration:    "1 day",
			Price:       179,
			MaxCapacity: 10,
			Status:      models.StatusActive,
			Image:       "images/forklift-refresher.jpg",
			Code:        "FLT-201",
			Category:    "forklift",
			Campuses:    []int{1},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          3,
			Name:        "Working at Heights Awareness",
			Description: "Harness use, ladder safety and fall prevention for warehouse staff",
			Duration:    "1 day",
			Price:       149,
			MaxCapacity: 15,
			Status:      models.StatusActive,
			Image:       "images/working-at-heights.jpg",
			Code:        "WAH-101",
			Category:    "safety",
			Campuses:    []int{2, 3},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	s.campuses = []models.Campus{
		{ID: 1, Name: "Riverside Training Centre", Address: "14 Wharf Road, Riverside", Status: models.StatusActive},
		{ID: 2, Name: "Northgate Depot", Address: "2 Foundry Lane, Northgate", Status: models.StatusActive},
		{ID: 3, Name: "Eastfield Industrial Park", Address: "Unit 7, Eastfield Industrial Park", Status: models.StatusActive},
	}

	s.sessions = []models.TrainingSession{
		{ID: 1, CourseID: 1, CourseName: "Forklift Operator Certification", CampusID: 1, CampusName: "Riverside Training Centre", Date: "2026-09-14", Enrolled: 0, MaxCapacity: 12, Status: models.StatusScheduled},
		{ID: 2, CourseID: 2, CourseName: "Advanced Forklift Safety Refresher", CampusID: 1, CampusName: "Riverside Training Centre", Date: "2026-09-21", Enrolled: 0, MaxCapacity: 10, Status: models.StatusScheduled},
		{ID: 3, CourseID: 3, CourseName: "Working at Heights Awareness", CampusID: 2, CampusName: "Northgate Depot", Date: "2026-10-05", Enrolled: 0, MaxCapacity: 15, Status: models.StatusScheduled},
	}

	s.students = []models.Student{}
	s.bookings = []models.Booking{}
}
