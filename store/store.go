// Package store implements the in-memory data layer of the training-course
// booking application: five record collections (courses, campuses, training
// sessions, students, bookings) backed by a single persistence slot that
// round-trips the whole graph as one JSON value.
//
// Every mutating operation immediately persists the full graph; pure reads
// never touch the slot. Not-found outcomes are nil/false returns, not
// errors. The store is owned by one caller at a time and is not internally
// synchronized.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"training-store-go/db"
	"training-store-go/models"
)

// Store holds the five collections and the persistence slot behind them.
type Store struct {
	slot db.Slot
	log  *zap.Logger
	now  func() time.Time

	courses  []models.Course
	campuses []models.Campus
	sessions []models.TrainingSession
	students []models.Student
	bookings []models.Booking
}

// New seeds the fixed starting data, then restores any previously persisted
// snapshot from the slot. A missing slot value leaves the seed data in
// place; a value that fails to parse fails construction.
func New(slot db.Slot, logger *zap.Logger) (*Store, error) {
	s := &Store{
		slot: slot,
		log:  logger,
		now:  time.Now,
	}
	s.seed()
	if err := s.restore(); err != nil {
		return nil, err
	}
	return s, nil
}

// restore replaces each collection with the corresponding snapshot field
// when one was persisted. Collections missing from the snapshot keep their
// seed (or empty) defaults.
func (s *Store) restore() error {
	raw, found, err := s.slot.Load()
	if err != nil {
		return fmt.Errorf("failed to load persisted data: %w", err)
	}
	if !found {
		s.log.Info("no persisted data found, starting from seed data")
		return nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("failed to parse persisted data: %w", err)
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
	s.log.Info("restored persisted data",
		zap.Int("courses", len(s.courses)),
		zap.Int("campuses", len(s.campuses)),
		zap.Int("trainingSessions", len(s.sessions)),
		zap.Int("students", len(s.students)),
		zap.Int("bookings", len(s.bookings)))
	return nil
}

// persist serializes all five collections into the slot as one value.
// Called after every mutating operation, never after reads.
func (s *Store) persist() error {
	raw, err := json.Marshal(s.snapshot())
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}
	if err := s.slot.Save(raw); err != nil {
		s.log.Error("failed to persist data", zap.Error(err))
		return err
	}
	return nil
}

// snapshot captures the whole graph. Slices are normalized to non-nil so an
// emptied collection persists as [] and is not mistaken for a missing field
// on restore.
func (s *Store) snapshot() models.Snapshot {
	return models.Snapshot{
		Courses:          emptyIfNil(s.courses),
		Campuses:         emptyIfNil(s.campuses),
		TrainingSessions: emptyIfNil(s.sessions),
		Students:         emptyIfNil(s.students),
		Bookings:         emptyIfNil(s.bookings),
	}
}

// nextID assigns ids as max existing id + 1, or 1 for an empty collection.
// Deleting a mid-range record leaves a permanent gap.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// containsFold reports whether field contains the already-lowercased query.
func containsFold(field, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
