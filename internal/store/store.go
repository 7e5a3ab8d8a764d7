// Package store provides key-value persistence of grievance records with
// swappable backends. The in-memory backend is always available; redis and
// postgres backends are optional and are wrapped by FallbackStore so that a
// backend failure degrades to the in-memory store instead of surfacing.
package store

import (
	"context"
	"errors"

	"github.com/citizen-connect/grievance-service/internal/domain"
)

// ErrNotFound is returned when no grievance exists for the given id.
var ErrNotFound = errors.New("grievance not found")

// GrievanceStore encapsulates grievance persistence.
type GrievanceStore interface {
	Put(ctx context.Context, grievance *domain.Grievance) error
	Get(ctx context.Context, id string) (*domain.Grievance, error)
	Scan(ctx context.Context) ([]domain.Grievance, error)
	Delete(ctx context.Context, id string) error
}
