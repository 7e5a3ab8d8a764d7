package store

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/citizen-connect/grievance-service/internal/domain"
	"github.com/citizen-connect/grievance-service/internal/observability"
)

// FallbackStore wraps an external backend with the in-memory store. Any
// backend failure is downgraded to the in-memory copy instead of being
// propagated; the downgrade is logged and counted so operators can see it,
// since callers cannot distinguish primary from fallback responses.
//
// A record written during a downgrade lives only in memory, so reads that
// miss the primary also consult the memory store before reporting NotFound.
type FallbackStore struct {
	primary GrievanceStore
	memory  *MemoryStore
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewFallbackStore wires the wrapper.
func NewFallbackStore(primary GrievanceStore, memory *MemoryStore, logger *zap.Logger, metrics *observability.Metrics) *FallbackStore {
	return &FallbackStore{primary: primary, memory: memory, logger: logger, metrics: metrics}
}

// Put writes to the primary backend, falling back to memory on failure.
func (s *FallbackStore) Put(ctx context.Context, grievance *domain.Grievance) error {
	if err := s.primary.Put(ctx, grievance); err != nil {
		s.downgrade("put", err)
		return s.memory.Put(ctx, grievance)
	}
	return nil
}

// Get reads from the primary backend, consulting memory on failure or miss.
func (s *FallbackStore) Get(ctx context.Context, id string) (*domain.Grievance, error) {
	grievance, err := s.primary.Get(ctx, id)
	if err == nil {
		return grievance, nil
	}
	if !errors.Is(err, ErrNotFound) {
		s.downgrade("get", err)
	}
	return s.memory.Get(ctx, id)
}

// Scan lists from the primary backend, falling back to memory on failure.
func (s *FallbackStore) Scan(ctx context.Context) ([]domain.Grievance, error) {
	result, err := s.primary.Scan(ctx)
	if err != nil {
		s.downgrade("scan", err)
		return s.memory.Scan(ctx)
	}
	return result, nil
}

// Delete removes from the primary backend, trying memory on failure or miss.
func (s *FallbackStore) Delete(ctx context.Context, id string) error {
	err := s.primary.Delete(ctx, id)
	if err == nil {
		// The record may also exist in memory after an earlier downgrade.
		_ = s.memory.Delete(ctx, id)
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		s.downgrade("delete", err)
	}
	return s.memory.Delete(ctx, id)
}

func (s *FallbackStore) downgrade(op string, err error) {
	if s.logger != nil {
		s.logger.Warn("store backend failed, serving from in-memory fallback",
			zap.String("op", op),
			zap.Error(err),
		)
	}
	s.metrics.RecordStoreFallback(op)
}
