// Package session holds the most recent combined analysis.
package session

import "sync/atomic"

// Store keeps a single value. Save overwrites; there is no per-caller
// isolation.
type Store[T any] interface {
	Save(v *T)
	Latest() (*T, bool)
}

// MemoryStore is a process-wide single slot. Concurrent writers race and
// the last Save wins; readers see whichever value was stored most recently.
type MemoryStore[T any] struct {
	slot atomic.Pointer[T]
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{}
}

func (s *MemoryStore[T]) Save(v *T) {
	s.slot.Store(v)
}

func (s *MemoryStore[T]) Latest() (*T, bool) {
	v := s.slot.Load()
	return v, v != nil
}
