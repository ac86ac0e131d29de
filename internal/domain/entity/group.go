// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Group represents a sharing group identified by its short opaque join code.
// Identity is immutable after creation; membership is a separate relation.
type Group struct {
	ID          string    `json:"group_id"`     // The short, collision-checked join code (e.g. "ABC123").
	DisplayName string    `json:"display_name"` // The human-readable group name.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when the group was created.
}

// Membership represents a user's membership in a group.
// Members are never hard-deleted; joining twice is a no-op.
type Membership struct {
	GroupID     string    `json:"group_id"`     // The join code of the group.
	UserID      string    `json:"user_id"`      // The opaque authenticated user ID supplied by the identity provider.
	DisplayName string    `json:"display_name"` // The display name the member joined with.
	JoinedAt    time.Time `json:"joined_at"`    // Timestamp of when the membership was created.
}
