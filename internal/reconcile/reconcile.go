// Package reconcile turns successive group snapshots into Added/Updated/Removed
// changes for a consumer. Each polling session owns one Session; the session is
// the explicit "last seen" context a diff is computed against, so there is no
// ambiguity about which snapshot produced which change.
package reconcile

import (
	"sort"
	"time"

	"huddle/internal/domain/entity"
)

// ChangeType classifies a reconciliation change.
type ChangeType string

const (
	// Added means the user appeared in the snapshot for the first time.
	Added ChangeType = "added"
	// Updated means the user's record advanced past the session watermark.
	Updated ChangeType = "updated"
	// Removed means the user disappeared from the snapshot, typically through
	// TTL expiry. This is how expiry becomes visible to a consumer without the
	// consumer tracking time itself.
	Removed ChangeType = "removed"
)

// Change is one reconciliation event. Record is set for Added and Updated;
// Removed carries only the user ID.
type Change struct {
	Type   ChangeType             `json:"type"`
	UserID string                 `json:"user_id"`
	Record *entity.LocationRecord `json:"record,omitempty"`
}

// Session holds the per-user "last seen" watermark for one polling consumer.
// The watermark never moves backward, so an out-of-order or duplicate poll
// response cannot regress visible state. Sessions are not safe for concurrent
// use; each poll loop owns exactly one.
type Session struct {
	selfID   string
	lastSeen map[string]time.Time
}

// NewSession creates a reconciliation session for the given consumer. Records
// authored by selfID are excluded from diffs — self state is driven by the
// caller's own reports, not by the polling cycle.
func NewSession(selfID string) *Session {
	return &Session{
		selfID:   selfID,
		lastSeen: make(map[string]time.Time),
	}
}

// Apply diffs the snapshot against the session state and advances the session.
// Changes are returned sorted by user ID so output order is deterministic.
func (s *Session) Apply(snapshot []*entity.LocationRecord) []Change {
	current := make(map[string]*entity.LocationRecord, len(snapshot))
	for _, record := range snapshot {
		if record.UserID == s.selfID {
			continue
		}
		current[record.UserID] = record
	}

	var changes []Change

	for userID, record := range current {
		watermark, known := s.lastSeen[userID]
		switch {
		case !known:
			s.lastSeen[userID] = record.UpdatedAt
			changes = append(changes, Change{Type: Added, UserID: userID, Record: record})
		case record.UpdatedAt.After(watermark):
			// Strict inequality: a non-advancing record is discarded, which
			// both suppresses redundant redraws and tolerates read-committed
			// snapshots arriving out of order.
			s.lastSeen[userID] = record.UpdatedAt
			changes = append(changes, Change{Type: Updated, UserID: userID, Record: record})
		}
	}

	for userID := range s.lastSeen {
		if _, present := current[userID]; !present {
			delete(s.lastSeen, userID)
			changes = append(changes, Change{Type: Removed, UserID: userID})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].UserID < changes[j].UserID
	})

	return changes
}

// Tracked returns how many users the session currently tracks.
func (s *Session) Tracked() int {
	return len(s.lastSeen)
}
