package presence

import (
	"context"
	"sync"
	"testing"
	"time"

	"huddle/internal/domain/entity"
	"huddle/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 15 * time.Minute

func newRecord(groupID, userID string, updatedAt time.Time) *entity.LocationRecord {
	return &entity.LocationRecord{
		GroupID:   groupID,
		UserID:    userID,
		Latitude:  25.03,
		Longitude: 121.56,
		Accuracy:  30,
		Status:    "on my way",
		UpdatedAt: updatedAt,
		ExpiresAt: updatedAt.Add(testTTL),
	}
}

func TestMemoryStore_UpsertOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Upsert(ctx, newRecord("GRP123", "alice", now)))

	updated := newRecord("GRP123", "alice", now.Add(time.Minute))
	updated.Latitude = 24.99
	require.NoError(t, store.Upsert(ctx, updated))

	records, err := store.Snapshot(ctx, "GRP123", now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 24.99, records[0].Latitude)
	assert.Equal(t, updated.UpdatedAt, records[0].UpdatedAt)
}

func TestMemoryStore_SnapshotSkipsExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Upsert(ctx, newRecord("GRP123", "alice", now)))
	require.NoError(t, store.Upsert(ctx, newRecord("GRP123", "bob", now.Add(-testTTL-time.Second))))

	records, err := store.Snapshot(ctx, "GRP123", now)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].UserID)
}

func TestMemoryStore_SnapshotScopedToGroup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Upsert(ctx, newRecord("GRP123", "alice", now)))
	require.NoError(t, store.Upsert(ctx, newRecord("OTHER1", "alice", now)))

	records, err := store.Snapshot(ctx, "GRP123", now)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "GRP123", records[0].GroupID)
}

func TestMemoryStore_SnapshotSortedAndDetached(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	for _, userID := range []string{"carol", "alice", "bob"} {
		require.NoError(t, store.Upsert(ctx, newRecord("GRP123", userID, now)))
	}

	records, err := store.Snapshot(ctx, "GRP123", now)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "alice", records[0].UserID)
	assert.Equal(t, "bob", records[1].UserID)
	assert.Equal(t, "carol", records[2].UserID)

	// Mutating the returned record must not touch the stored one.
	records[0].Status = "mutated"
	again, err := store.Snapshot(ctx, "GRP123", now)
	require.NoError(t, err)
	assert.Equal(t, "on my way", again[0].Status)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Upsert(ctx, newRecord("GRP123", "alice", now)))

	later := now.Add(time.Minute)
	record, err := store.UpdateStatus(ctx, "GRP123", "alice", "grabbing coffee", later, testTTL)
	require.NoError(t, err)
	assert.Equal(t, "grabbing coffee", record.Status)
	assert.Equal(t, later, record.UpdatedAt)
	assert.Equal(t, later.Add(testTTL), record.ExpiresAt)

	// Position survives a status-only update.
	assert.Equal(t, 25.03, record.Latitude)
}

func TestMemoryStore_UpdateStatusMissingOrExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	_, err := store.UpdateStatus(ctx, "GRP123", "ghost", "hi", now, testTTL)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	require.NoError(t, store.Upsert(ctx, newRecord("GRP123", "alice", now.Add(-testTTL-time.Second))))
	_, err = store.UpdateStatus(ctx, "GRP123", "alice", "hi", now, testTTL)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestMemoryStore_ConcurrentPairsDoNotInterfere(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	users := []string{"alice", "bob", "carol", "dave", "erin"}
	const writesPerUser = 100

	var wg sync.WaitGroup
	for _, userID := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < writesPerUser; i++ {
				_ = store.Upsert(ctx, newRecord("GRP123", userID, now.Add(time.Duration(i)*time.Millisecond)))
			}
		}()
	}
	wg.Wait()

	records, err := store.Snapshot(ctx, "GRP123", now.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, records, len(users))
	for _, record := range records {
		// The final write for each pair wins.
		assert.Equal(t, now.Add((writesPerUser-1)*time.Millisecond), record.UpdatedAt)
	}
}
