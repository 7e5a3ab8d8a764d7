package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citizen-connect/grievance-service/internal/domain"
)

func sampleGrievance(id string) *domain.Grievance {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Grievance{
		ID:           id,
		TicketNumber: "GR26080042",
		CitizenName:  "Asha Verma",
		CitizenPhone: "9876543210",
		Description:  "No water supply in our colony for the last three days",
		Category:     domain.CategoryWaterSupply,
		Priority:     domain.PriorityHigh,
		Status:       domain.StatusPending,
		Location:     "Shastri Colony",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	g := sampleGrievance("grv_1")
	require.NoError(t, s.Put(ctx, g))

	got, err := s.Get(ctx, "grv_1")
	require.NoError(t, err)
	assert.Equal(t, *g, *got)

	// The store owns its copy; mutating the original must not leak in.
	g.Status = domain.StatusResolved
	got, err = s.Get(ctx, "grv_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "grv_absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreScan(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	all, err := s.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, s.Put(ctx, sampleGrievance("grv_1")))
	require.NoError(t, s.Put(ctx, sampleGrievance("grv_2")))

	all, err = s.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	assert.ErrorIs(t, s.Delete(ctx, "grv_1"), ErrNotFound)

	require.NoError(t, s.Put(ctx, sampleGrievance("grv_1")))
	require.NoError(t, s.Delete(ctx, "grv_1"))

	_, err := s.Get(ctx, "grv_1")
	assert.ErrorIs(t, err, ErrNotFound)
}
