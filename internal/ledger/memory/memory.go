// Package memory provides an in-memory ledger store, used by tests and by
// the throwaway `memory` data backend.
package memory

import (
	"context"
	"sync"

	"expenselog/internal/core"
)

type Store struct {
	mu      sync.Mutex
	entries []core.Entry
	saveErr error
	saves   int
}

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store pre-populated with entries.
func NewSeeded(entries []core.Entry) *Store {
	s := New()
	s.entries = append(s.entries, entries...)
	return s
}

// Load returns a copy of the stored collection.
func (s *Store) Load(_ context.Context) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Save replaces the stored collection wholesale.
func (s *Store) Save(_ context.Context, entries []core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.entries = make([]core.Entry, len(entries))
	copy(s.entries, entries)
	return nil
}

// FailSavesWith arms the store to fail every subsequent Save with err.
// Pass nil to disarm. Used to exercise write-failure paths in tests.
func (s *Store) FailSavesWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves reports how many times Save was called.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
