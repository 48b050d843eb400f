// Package db provides the persistence slot: a single named location that
// holds the serialized data graph. Backends satisfy the Slot interface so
// the store never knows which one it is talking to and tests can run
// against the in-memory implementation.
package db

// Slot is the persistence contract. Load reports found=false when nothing
// has been saved yet; that is not an error.
type Slot interface {
	Load() (data []byte, found bool, err error)
	Save(data []byte) error
}
