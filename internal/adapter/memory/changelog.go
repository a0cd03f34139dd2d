// Package memory provides in-process stores. They are used by unit tests and
// by the server when no database-backed change log is configured.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// ChangeLogStore is an append-only, process-local domain.ChangeLogStore.
type ChangeLogStore struct {
	mu      sync.RWMutex
	entries []domain.ChangeEntry
}

func NewChangeLogStore() *ChangeLogStore {
	return &ChangeLogStore{}
}

// Create appends the entry. Entries without a payload are rejected, like the
// database-backed store does.
func (s *ChangeLogStore) Create(_ context.Context, entry domain.ChangeEntry) (domain.ChangeEntry, error) {
	if len(entry.Changes) == 0 {
		return domain.ChangeEntry{}, domain.NewValidationError("changes", "payload must not be empty")
	}
	if !entry.Operation.IsValid() {
		return domain.ChangeEntry{}, domain.NewValidationError("operation", "unknown operation "+entry.Operation.String())
	}

	stored := cloneEntry(entry)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, stored)
	return cloneEntry(stored), nil
}

// Filter returns the entries of one target, newest first.
func (s *ChangeLogStore) Filter(_ context.Context, targetType domain.TargetType, targetID uuid.UUID, limit int) ([]domain.ChangeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.ChangeEntry{}
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.TargetType != targetType || e.TargetID == nil || *e.TargetID != targetID {
			continue
		}
		out = append(out, cloneEntry(e))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// All returns every stored entry in insertion order.
func (s *ChangeLogStore) All() []domain.ChangeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChangeEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Len returns the number of stored entries.
func (s *ChangeLogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear drops every entry.
func (s *ChangeLogStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

func cloneEntry(e domain.ChangeEntry) domain.ChangeEntry {
	e.Changes = slices.Clone(e.Changes)
	if e.Actor != nil {
		a := *e.Actor
		e.Actor = &a
	}
	if e.TargetID != nil {
		id := *e.TargetID
		e.TargetID = &id
	}
	return e
}
