// Package presence contains the concrete implementations of the latest-position
// store: an in-process sharded map (the default) and an optional Redis-backed
// store using native key TTL.
package presence

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"huddle/internal/domain/entity"
	"huddle/internal/domain/repository"
)

const shardCount = 64

type pairKey struct {
	groupID string
	userID  string
}

// shard guards one slice of the (group, user) key space. Writes for the same
// pair serialize on the shard lock; pairs in different shards never contend.
type shard struct {
	mu      sync.RWMutex
	records map[pairKey]*entity.LocationRecord
}

// memoryStore is the in-process latest-position table. Expiry is lazy: an
// expired record is invisible to reads and reaped opportunistically when a
// snapshot walks past it.
type memoryStore struct {
	shards [shardCount]*shard
}

// NewMemoryStore creates the in-process location store.
func NewMemoryStore() repository.LocationRepository {
	store := &memoryStore{}
	for i := range store.shards {
		store.shards[i] = &shard{records: make(map[pairKey]*entity.LocationRecord)}
	}

	return store
}

func (s *memoryStore) shardFor(key pairKey) *shard {
	h := fnv.New32a()
	h.Write([]byte(key.groupID))
	h.Write([]byte{0})
	h.Write([]byte(key.userID))

	return s.shards[h.Sum32()%shardCount]
}

// Upsert overwrites the slot for the pair. Last write applied wins.
func (s *memoryStore) Upsert(_ context.Context, record *entity.LocationRecord) error {
	key := pairKey{groupID: record.GroupID, userID: record.UserID}
	sh := s.shardFor(key)

	sh.mu.Lock()
	sh.records[key] = record.Clone()
	sh.mu.Unlock()

	return nil
}

// UpdateStatus mutates the live record under the shard lock so the
// read-modify-write is atomic with respect to concurrent reports for the pair.
func (s *memoryStore) UpdateStatus(_ context.Context, groupID, userID, status string, now time.Time, ttl time.Duration) (*entity.LocationRecord, error) {
	key := pairKey{groupID: groupID, userID: userID}
	sh := s.shardFor(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	record, ok := sh.records[key]
	if !ok || record.Expired(now) {
		return nil, repository.ErrRecordNotFound
	}

	record.Status = status
	record.UpdatedAt = now
	record.ExpiresAt = now.Add(ttl)

	return record.Clone(), nil
}

// Snapshot collects the group's non-expired records. Expired entries
// encountered along the way are reaped; correctness never depends on that.
func (s *memoryStore) Snapshot(_ context.Context, groupID string, now time.Time) ([]*entity.LocationRecord, error) {
	var records []*entity.LocationRecord

	for _, sh := range s.shards {
		sh.mu.Lock()
		for key, record := range sh.records {
			if key.groupID != groupID {
				continue
			}
			if record.Expired(now) {
				delete(sh.records, key)

				continue
			}
			records = append(records, record.Clone())
		}
		sh.mu.Unlock()
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UserID < records[j].UserID
	})

	return records, nil
}
