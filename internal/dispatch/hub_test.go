package dispatch

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"huddle/config"
	"huddle/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(bufSize int) *Hub {
	cfg := &config.Config{
		Presence: &config.PresenceConfig{
			EventBufferSize: bufSize,
			EventFeedSize:   6,
		},
	}

	return NewHub(HubParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func testEvent(userID string) *entity.GeofenceEvent {
	return &entity.GeofenceEvent{
		Type:    entity.GeofenceEnter,
		FenceID: "office",
		UserID:  userID,
		At:      time.Now(),
	}
}

func TestHub_EverySubscriberReceivesOwnCopy(t *testing.T) {
	hub := newTestHub(4)
	ctx := context.Background()

	subA := hub.Subscribe("GRP123")
	defer subA.Close()
	subB := hub.Subscribe("GRP123")
	defer subB.Close()

	require.NoError(t, hub.Publish(ctx, "GRP123", testEvent("alice")))

	for _, sub := range []interface{ Events() <-chan *entity.GeofenceEvent }{subA, subB} {
		select {
		case got := <-sub.Events():
			assert.Equal(t, "alice", got.UserID)
			assert.NotEqual(t, uuid.Nil, got.ID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestHub_GroupsAreIsolated(t *testing.T) {
	hub := newTestHub(4)
	ctx := context.Background()

	other := hub.Subscribe("OTHER1")
	defer other.Close()

	require.NoError(t, hub.Publish(ctx, "GRP123", testEvent("alice")))

	select {
	case <-other.Events():
		t.Fatal("event leaked across groups")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_LateSubscriberMissesEvent(t *testing.T) {
	hub := newTestHub(4)
	ctx := context.Background()

	require.NoError(t, hub.Publish(ctx, "GRP123", testEvent("alice")))

	late := hub.Subscribe("GRP123")
	defer late.Close()

	select {
	case <-late.Events():
		t.Fatal("late subscriber must not see earlier events")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := newTestHub(1)
	ctx := context.Background()

	sub := hub.Subscribe("GRP123")
	defer sub.Close()

	require.NoError(t, hub.Publish(ctx, "GRP123", testEvent("first")))

	done := make(chan struct{})
	go func() {
		// The buffer is full; this publish must not block on the slow consumer.
		_ = hub.Publish(ctx, "GRP123", testEvent("second"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber buffer")
	}

	got := <-sub.Events()
	assert.Equal(t, "first", got.UserID)
}

func TestHub_CloseUnregistersAndIsIdempotent(t *testing.T) {
	hub := newTestHub(4)

	sub := hub.Subscribe("GRP123")
	require.Equal(t, 1, hub.Subscribers("GRP123"))

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, hub.Subscribers("GRP123"))

	_, open := <-sub.Events()
	assert.False(t, open)
}

func TestHub_RejectsInvalidEvents(t *testing.T) {
	hub := newTestHub(4)
	ctx := context.Background()

	assert.Error(t, hub.Publish(ctx, "GRP123", nil))
	assert.Error(t, hub.Publish(ctx, "GRP123", &entity.GeofenceEvent{Type: "SIDEWAYS"}))
}

func TestHub_FeedCollectsPublishedEvents(t *testing.T) {
	hub := newTestHub(4)
	ctx := context.Background()

	// The feed exists from the first access; earlier events are not backfilled.
	require.NoError(t, hub.Publish(ctx, "GRP123", testEvent("before")))
	groupFeed := hub.Feed("GRP123")
	assert.Equal(t, 0, groupFeed.Len())

	require.NoError(t, hub.Publish(ctx, "GRP123", testEvent("after")))
	entries := groupFeed.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "after", entries[0].Event.UserID)

	// Same feed instance on every access.
	assert.Equal(t, 1, hub.Feed("GRP123").Len())
}
