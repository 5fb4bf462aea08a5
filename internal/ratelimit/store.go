package ratelimit

import (
	"sync"
	"time"
)

// SubmissionStore is the ledger of contact submission timestamps keyed by
// sender email. Timestamps are epoch milliseconds. Implementations must be
// safe for concurrent use; callers that need an atomic read-modify-write
// must serialize it themselves.
type SubmissionStore interface {
	// Get returns the stored timestamps for key, nil if the key is unseen.
	Get(key string) []int64
	// Put replaces the stored timestamps for key.
	Put(key string, timestamps []int64)
}

// MemoryStore is the in-process SubmissionStore. Entries live for the
// lifetime of the process unless compacted by Sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]int64
}

// NewMemoryStore creates an empty in-memory submission ledger
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]int64),
	}
}

func (s *MemoryStore) Get(key string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.entries[key]
	if !ok {
		return nil
	}

	// Copy so callers cannot mutate the ledger behind the lock
	timestamps := make([]int64, len(stored))
	copy(timestamps, stored)
	return timestamps
}

func (s *MemoryStore) Put(key string, timestamps []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]int64, len(timestamps))
	copy(stored, timestamps)
	s.entries[key] = stored
}

// Len returns the number of tracked keys
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep drops timestamps older than window and removes keys with no
// remaining entries. It bounds memory growth for keys that went quiet;
// the submission path itself only compacts keys it touches.
func (s *MemoryStore) Sweep(now time.Time, window time.Duration) int {
	cutoff := now.UnixMilli() - window.Milliseconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, timestamps := range s.entries {
		recent := timestamps[:0]
		for _, ts := range timestamps {
			if ts > cutoff {
				recent = append(recent, ts)
			}
		}
		if len(recent) == 0 {
			delete(s.entries, key)
			removed++
			continue
		}
		s.entries[key] = recent
	}
	return removed
}
