package db

import "sync"

// MemorySlot keeps the serialized graph in memory. It backs tests and
// ephemeral runs where no Redis is available. The mutex only matters when a
// single slot is shared between stores, e.g. restore tests.
type MemorySlot struct {
	mu    sync.Mutex
	data  []byte
	saved bool
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load returns a copy of the last saved value.
func (s *MemorySlot) Load() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

// Save stores a copy of data as the slot value.
func (s *MemorySlot) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.saved = true
	return nil
}
