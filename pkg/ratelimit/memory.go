package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepInterval bounds how often the full-map eviction pass runs
const sweepInterval = time.Minute

type memoryEntry struct {
	hits      []time.Time
	expiresAt time.Time
}

// MemoryStore is an in-process Store for tests and single-node deployments.
// Expired identifiers are evicted by a periodic sweep so one-off callers do
// not accumulate forever.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*memoryEntry
	lastSweep time.Time
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

// Hit records a request, evicts expired entries, and counts the window
func (s *MemoryStore) Hit(_ context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
		s.lastSweep = now
	}

	e := s.entries[key]
	if e == nil {
		e = &memoryEntry{}
		s.entries[key] = e
	}

	windowStart := now.Add(-window)
	kept := e.hits[:0]
	for _, t := range e.hits {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	e.hits = append(kept, now)
	e.expiresAt = now.Add(window)

	return int64(len(e.hits)), nil
}

// sweep drops identifiers whose whole window has expired. Caller holds the
// lock.
func (s *MemoryStore) sweep(now time.Time) {
	for key, e := range s.entries {
		if e.expiresAt.Before(now) {
			delete(s.entries, key)
		}
	}
}
