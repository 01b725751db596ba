package session

import (
	"context"
	"sync"
)

// Store keeps one value of type T per session id. All entity state lives in
// process memory and is lost on restart; sessions never share state.
//
// The mutex only guards the session map. Values themselves are handed out by
// pointer and are expected to be accessed by one request at a time, matching
// the single-threaded-per-session model of the dashboard.
type Store[T any] struct {
	mu   sync.Mutex
	data map[string]*T
	init func() *T
}

// NewStore creates a Store that lazily builds per-session values with init.
func NewStore[T any](init func() *T) *Store[T] {
	return &Store[T]{
		data: make(map[string]*T),
		init: init,
	}
}

// Get returns the value bound to the session in ctx, creating it on first
// access. Returns ErrNoSession when the context carries no session id.
func (s *Store[T]) Get(ctx context.Context) (*T, error) {
	id, err := CurrentId(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[id]
	if !ok {
		v = s.init()
		s.data[id] = v
	}
	return v, nil
}
