package store

import (
	"context"
	"sync"

	"github.com/citizen-connect/grievance-service/internal/domain"
)

// MemoryStore keeps grievances in a mutex-guarded map. It is the mandatory
// backend and the fallback target when an external backend fails. Fiber
// dispatches handlers concurrently, so every access takes the lock.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.Grievance
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]domain.Grievance)}
}

// Put stores a copy of the grievance under its id.
func (s *MemoryStore) Put(_ context.Context, grievance *domain.Grievance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[grievance.ID] = *grievance
	return nil
}

// Get returns a copy of the stored grievance or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Grievance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Scan returns all stored grievances in unspecified order.
func (s *MemoryStore) Scan(_ context.Context) ([]domain.Grievance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Grievance, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	return result, nil
}

// Delete removes the grievance or returns ErrNotFound.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// Len reports the number of stored grievances.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
