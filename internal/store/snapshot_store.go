// Package store holds the last-fetched snapshot of a resource collection.
//
// Loads are tagged with a monotonically increasing sequence number. A
// response is applied only when its sequence is the highest applied so
// far, so a slow response issued earlier can never clobber a fresher one.
package store

import (
	"sync"
	"time"
)

type SnapshotStore[T any] struct {
	mu       sync.RWMutex
	items    []T
	issued   uint64
	applied  uint64
	inflight int
	loadedAt time.Time
}

func NewSnapshotStore[T any]() *SnapshotStore[T] {
	return &SnapshotStore[T]{}
}

// Begin issues a sequence number for a new load and marks the store loading.
func (s *SnapshotStore[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.inflight++
	return s.issued
}

// Apply installs a load response. Responses older than the newest applied
// one are discarded and Apply reports false.
func (s *SnapshotStore[T]) Apply(seq uint64, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight > 0 {
		s.inflight--
	}
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.items = items
	s.loadedAt = time.Now()
	return true
}

// Fail records a failed load. The prior snapshot stays untouched.
func (s *SnapshotStore[T]) Fail(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight > 0 {
		s.inflight--
	}
}

// Items returns a copy of the current snapshot.
func (s *SnapshotStore[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *SnapshotStore[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *SnapshotStore[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
