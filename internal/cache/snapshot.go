package cache

import (
	"sync"
	"time"
)

// DefaultTTL matches the 15-minute validity window of the original client.
const DefaultTTL = 15 * time.Minute

// Snapshot holds at most one full collection of T together with the time it
// was fetched. A snapshot is valid while now-fetchedAt < ttl; once expired
// it is treated as absent even though the records are still physically held.
type Snapshot[T any] struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	records   []T
	fetchedAt time.Time
}

func NewSnapshot[T any](ttl time.Duration) *Snapshot[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Snapshot[T]{ttl: ttl, now: time.Now}
}

func (s *Snapshot[T]) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records != nil && s.now().Sub(s.fetchedAt) < s.ttl
}

// Records returns a copy of whatever is stored, valid or not. Callers are
// expected to check Valid first; there is no implicit refetch here.
func (s *Snapshot[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.records == nil {
		return nil
	}
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Put replaces the stored collection unconditionally and stamps fetchedAt.
func (s *Snapshot[T]) Put(records []T) {
	cp := make([]T, len(records))
	copy(cp, records)
	s.mu.Lock()
	s.records = cp
	s.fetchedAt = s.now()
	s.mu.Unlock()
}

// Invalidate clears the collection and resets fetchedAt to never. Idempotent.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.records = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}

// Find returns the first stored record matching pred. Validity is the
// caller's concern, same as with Records.
func (s *Snapshot[T]) Find(pred func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if pred(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Evict removes the records matching pred, leaving fetchedAt — and with it
// the snapshot's validity — untouched.
func (s *Snapshot[T]) Evict(pred func(T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records == nil {
		return
	}
	kept := s.records[:0]
	for _, r := range s.records {
		if !pred(r) {
			kept = append(kept, r)
		}
	}
	s.records = kept
}

func (s *Snapshot[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
