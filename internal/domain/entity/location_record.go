package entity

import (
	"time"
)

// LocationRecord is the authoritative latest position and status for one
// (group, user) pair. Each new report overwrites the previous record; the
// record is treated as absent once ExpiresAt has passed.
type LocationRecord struct {
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`   // Geographic latitude in [-90, 90].
	Longitude float64   `json:"longitude"`  // Geographic longitude in [-180, 180].
	Accuracy  float64   `json:"accuracy"`   // Reported accuracy radius in meters, stored raw.
	Status    string    `json:"status"`     // Free-form short status string, stored verbatim.
	UpdatedAt time.Time `json:"updated_at"` // Server-assigned write time; client timestamps are advisory only.
	ExpiresAt time.Time `json:"expires_at"` // UpdatedAt + TTL; expiry is evaluated lazily at read time.
}

// Expired reports whether the record should be treated as absent at the given instant.
func (r *LocationRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Online reports whether the record counts as live rather than stale. A record
// can be present but offline before TTL expiry finally removes it.
func (r *LocationRecord) Online(now time.Time, window time.Duration) bool {
	return now.Sub(r.UpdatedAt) < window
}

// Clone returns a copy of the record so stores can hand out snapshots without
// sharing mutable state with callers.
func (r *LocationRecord) Clone() *LocationRecord {
	clone := *r

	return &clone
}
