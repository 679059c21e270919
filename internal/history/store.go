// Package history provides read-only access to the verified employment
// records that truthfulness checks run against.
package history

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/draft-refinery/internal/types"
)

// Store resolves a user's verified work history. Implementations are
// read-only; records are maintained by a separate intake system.
type Store interface {
	GetWorkHistory(ctx context.Context, userID string) ([]types.WorkHistoryRecord, error)
}

// MemoryStore is an in-process Store backed by a map. Used by the CLI when
// records are loaded from a file and by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]types.WorkHistoryRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]types.WorkHistoryRecord)}
}

// Put replaces the stored records for a user.
func (s *MemoryStore) Put(userID string, records []types.WorkHistoryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]types.WorkHistoryRecord, len(records))
	copy(copied, records)
	sort.Slice(copied, func(i, j int) bool {
		return copied[i].ExperienceID < copied[j].ExperienceID
	})
	s.records[userID] = copied
}

// GetWorkHistory returns the user's records ordered by experience ID. An
// unknown user resolves to an empty history, not an error.
func (s *MemoryStore) GetWorkHistory(_ context.Context, userID string) ([]types.WorkHistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.records[userID]
	if !ok {
		return nil, nil
	}
	out := make([]types.WorkHistoryRecord, len(stored))
	copy(out, stored)
	return out, nil
}
