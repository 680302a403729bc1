package session

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Store is an in-memory session store. Sessions live for the duration
// of a browsing session and are discarded on expiry or explicit delete;
// nothing is ever persisted.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]*entry[T]
	ttl   time.Duration
	clock clockwork.Clock
}

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// NewInMemoryStore creates a store whose idle sessions expire after ttl.
// A zero ttl disables expiry.
func NewInMemoryStore[T any](ttl time.Duration, clock clockwork.Clock) *Store[T] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store[T]{
		items: make(map[string]*entry[T]),
		ttl:   ttl,
		clock: clock,
	}
}

// Put stores or replaces a session value.
func (s *Store[T]) Put(id string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = &entry[T]{value: value, lastSeen: s.clock.Now()}
}

// Get returns the session value and refreshes its idle timer.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	e.lastSeen = s.clock.Now()
	return e.value, true
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// Len reports the number of live sessions.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Sweep runs in the calling goroutine, dropping idle sessions every
// interval until ctx is cancelled.
func (s *Store[T]) Sweep(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.dropExpired()
		}
	}
}

func (s *Store[T]) dropExpired() {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.clock.Now().Add(-s.ttl)
	for id, e := range s.items {
		if e.lastSeen.Before(cutoff) {
			delete(s.items, id)
		}
	}
}
