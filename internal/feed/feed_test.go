package feed

import (
	"testing"
	"time"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(fenceID string) *entity.GeofenceEvent {
	return &entity.GeofenceEvent{
		ID:      uuid.New(),
		Type:    entity.GeofenceEnter,
		FenceID: fenceID,
		UserID:  "alice",
		At:      time.Now(),
	}
}

func TestFeed_NewestFirst(t *testing.T) {
	f := New(3)

	f.Push(event("first"))
	f.Push(event("second"))

	entries := f.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Event.FenceID)
	assert.Equal(t, "first", entries[1].Event.FenceID)
}

func TestFeed_EvictsOldestBeyondBound(t *testing.T) {
	f := New(3)

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		f.Push(event(id))
	}

	entries := f.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "e", entries[0].Event.FenceID)
	assert.Equal(t, "d", entries[1].Event.FenceID)
	assert.Equal(t, "c", entries[2].Event.FenceID)
}

func TestFeed_DismissLeavesOthersIntact(t *testing.T) {
	f := New(6)

	f.Push(event("a"))
	middle := f.Push(event("b"))
	f.Push(event("c"))

	require.True(t, f.Dismiss(middle.ID))
	assert.Equal(t, 2, f.Len())

	entries := f.Entries()
	assert.Equal(t, "c", entries[0].Event.FenceID)
	assert.Equal(t, "a", entries[1].Event.FenceID)

	// Dismissing again is a miss, not an error.
	assert.False(t, f.Dismiss(middle.ID))
}

func TestFeed_DefaultBound(t *testing.T) {
	f := New(0)

	for i := 0; i < DefaultSize+4; i++ {
		f.Push(event("fence"))
	}

	assert.Equal(t, DefaultSize, f.Len())
}

func TestFeed_EntriesReturnsCopy(t *testing.T) {
	f := New(6)
	f.Push(event("a"))

	entries := f.Entries()
	entries[0] = nil

	require.NotNil(t, f.Entries()[0])
}
