package presence

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"huddle/config"
	"huddle/internal/domain/entity"
	"huddle/internal/domain/repository"
	"huddle/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "presence"

// redisStore keeps the latest-position table in Redis, one key per
// (group, user) pair with a native TTL matching ExpiresAt. Per-pair
// serialization relies on each device reporting only its own pair; the store
// does not guard against two writers racing on the same pair across instances.
type redisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore creates the Redis-backed location store.
func NewRedisStore(client *redis.Client, cfg *config.RedisConfig, logger *slog.Logger) repository.LocationRepository {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisStore{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (s *redisStore) key(groupID, userID string) string {
	return s.prefix + ":" + groupID + ":" + userID
}

func (s *redisStore) groupPattern(groupID string) string {
	return s.prefix + ":" + groupID + ":*"
}

// Upsert overwrites the pair's key; the key TTL enforces hard expiry so no
// reaping is needed at all.
func (s *redisStore) Upsert(ctx context.Context, record *entity.LocationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.WithStack(err)
	}

	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		// Already expired on arrival; nothing to store.
		return nil
	}

	if err := s.client.Set(ctx, s.key(record.GroupID, record.UserID), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to upsert location record")
	}

	return nil
}

// UpdateStatus reads, mutates and rewrites the pair's key.
func (s *redisStore) UpdateStatus(ctx context.Context, groupID, userID, status string, now time.Time, ttl time.Duration) (*entity.LocationRecord, error) {
	raw, err := s.client.Get(ctx, s.key(groupID, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read location record")
	}

	var record entity.LocationRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.WithStack(err)
	}
	if record.Expired(now) {
		return nil, repository.ErrRecordNotFound
	}

	record.Status = status
	record.UpdatedAt = now
	record.ExpiresAt = now.Add(ttl)

	payload, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := s.client.Set(ctx, s.key(groupID, userID), payload, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to rewrite location record")
	}

	return &record, nil
}

// Snapshot scans the group's keys and bulk-loads the live records. Records
// whose TTL raced to zero between SCAN and MGET are simply skipped.
func (s *redisStore) Snapshot(ctx context.Context, groupID string, now time.Time) ([]*entity.LocationRecord, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.groupPattern(groupID), 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan location records")
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location records")
	}

	records := make([]*entity.LocationRecord, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record entity.LocationRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			s.logger.Warn("Skipping undecodable location record", slog.Any("error", err))

			continue
		}
		if record.Expired(now) {
			continue
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UserID < records[j].UserID
	})

	return records, nil
}
