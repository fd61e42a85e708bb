// Package memory provides the list-backed reference adapters used by tests
// and local development. One mutex guards each store; every mutation funnels
// through it.
package memory

import (
	"context"
	"sync"
)

// Store is a slice-backed implementation of the repository port. Fetch is a
// linear scan, which is plenty for a reference double.
type Store[E any, I comparable] struct {
	mu   sync.Mutex
	db   []E
	idOf func(E) I
}

// NewStore creates an empty store using idOf to key entities.
func NewStore[E any, I comparable](idOf func(E) I) *Store[E, I] {
	return &Store[E, I]{idOf: idOf}
}

// Create appends the entity and returns it unchanged.
func (s *Store[E, I]) Create(ctx context.Context, entity E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = append(s.db, entity)
	return entity, nil
}

// Fetch scans for the entity with the given id. Absence yields nil, nil.
func (s *Store[E, I]) Fetch(ctx context.Context, id I) (*E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.db {
		if s.idOf(s.db[i]) == id {
			found := s.db[i]
			return &found, nil
		}
	}
	return nil, nil
}

// Len reports how many entities the store holds.
func (s *Store[E, I]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.db)
}
