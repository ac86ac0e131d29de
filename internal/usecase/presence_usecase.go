package usecase

import (
	"context"
	"time"

	"huddle/internal/domain/entity"
)

// ReportLocationInput represents one device sample handed to ingestion
type ReportLocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Status    string  `json:"status"`

	// ClientTimestamp is advisory only; the committed record always carries
	// the authoritative server clock.
	ClientTimestamp time.Time `json:"client_timestamp"`
}

// MemberPresence is the read model served to snapshot consumers: the stored
// record with the accuracy radius clamped into the display-safe band and the
// derived online flag.
type MemberPresence struct {
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Online    bool      `json:"online"`
}

// PresenceUsecase defines the interface for the ingestion and snapshot paths
type PresenceUsecase interface {
	// ReportLocation validates and commits a location/status report for the
	// caller, refreshing the record TTL. The write either commits or returns
	// an error; it is never silently dropped.
	ReportLocation(ctx context.Context, groupID, userID string, input *ReportLocationInput) (*entity.LocationRecord, error)

	// SetStatus updates only the status string of the caller's live record,
	// refreshing the TTL. Fails with a not-found error when the caller has no
	// live record in the group.
	SetStatus(ctx context.Context, groupID, userID, status string) (*entity.LocationRecord, error)

	// GroupSnapshot returns the non-expired records of the group as presence
	// read models.
	GroupSnapshot(ctx context.Context, groupID string) ([]*MemberPresence, error)
}
