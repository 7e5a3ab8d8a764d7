package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventGrievanceCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e.GrievanceID)
		return nil
	})
	d.Subscribe(EventGrievanceDeleted, func(_ context.Context, e Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{
		Type:        EventGrievanceCreated,
		GrievanceID: "grv_1",
	}))
	assert.Equal(t, []string{"grv_1"}, seen)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var called bool
	d.Subscribe(EventGrievanceStatusChanged, func(context.Context, Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventGrievanceStatusChanged, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventGrievanceStatusChanged}))
	assert.True(t, called)
}
