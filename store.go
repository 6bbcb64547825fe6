package workshop

import "slices"

// Record is implemented by every entity type held in a Store.
type Record[R any] interface {
	// Identity returns the opaque unique identity of the record, or "" before creation.
	Identity() string
	withIdentity(id string) R
}

// Store is an in-memory ordered collection of committed records of one
// entity type. Each store is exclusively owned by the screen that manages
// it; it only ever contains fully committed records.
//
// Records are kept in insertion order. There is no delete operation: the
// managed entities are never structurally removed within a session.
type Store[R Record[R]] struct {
	kind    string
	records []R
	index   map[string]int // identity to position in records
}

// NewStore creates an empty store. kind names the entity for error messages.
func NewStore[R Record[R]](kind string) *Store[R] {
	return &Store[R]{kind: kind, index: make(map[string]int)}
}

// Create assigns a fresh identity to the record, appends it, and returns it.
func (s *Store[R]) Create(r R) R {
	r = r.withIdentity(newID())
	s.index[r.Identity()] = len(s.records)
	s.records = append(s.records, r)
	return r
}

// Replace swaps the record with the given identity for r, preserving the
// identity and the record's position. It returns an error wrapping
// ErrNotFound, leaving the store untouched, when the identity is unknown.
func (s *Store[R]) Replace(id string, r R) (R, error) {
	i, ok := s.index[id]
	if !ok {
		var zero R
		return zero, notFound(s.kind, id)
	}
	r = r.withIdentity(id)
	s.records[i] = r
	return r, nil
}

// Get returns the record with the given identity.
func (s *Store[R]) Get(id string) (R, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero R
		return zero, false
	}
	return s.records[i], true
}

// List returns a copy of all records in insertion order.
func (s *Store[R]) List() []R {
	return slices.Clone(s.records)
}

// Len returns the number of committed records.
func (s *Store[R]) Len() int { return len(s.records) }
