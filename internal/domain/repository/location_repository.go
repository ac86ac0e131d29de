package repository

import (
	"context"
	"time"

	"huddle/internal/domain/entity"
	"huddle/internal/errors"
)

// ErrRecordNotFound is returned when no live location record exists for the
// (group, user) pair.
var ErrRecordNotFound = errors.New("location record not found")

// LocationRepository is the latest-position table: at most one live record per
// (group, user) pair. Writes for the same pair serialize; writes for different
// pairs require no coordination. Expiry is evaluated lazily at read time —
// implementations may reap expired entries opportunistically, but correctness
// never depends on reaping timing.
type LocationRepository interface {
	// Upsert overwrites the record for (record.GroupID, record.UserID).
	Upsert(ctx context.Context, record *entity.LocationRecord) error

	// UpdateStatus replaces the status of the live record for the pair and
	// refreshes UpdatedAt/ExpiresAt. Returns ErrRecordNotFound when the pair
	// has no record or the record has expired.
	UpdateStatus(ctx context.Context, groupID, userID, status string, now time.Time, ttl time.Duration) (*entity.LocationRecord, error)

	// Snapshot returns all non-expired records for the group as of now.
	Snapshot(ctx context.Context, groupID string, now time.Time) ([]*entity.LocationRecord, error)
}
