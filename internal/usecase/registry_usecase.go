package usecase

import (
	"context"

	"huddle/internal/domain/entity"
)

// CreateGroupInput represents the input for creating a group
type CreateGroupInput struct {
	DisplayName       string `json:"display_name"`        // The group's name
	MemberDisplayName string `json:"member_display_name"` // The creator's own display name (optional)
}

// JoinGroupInput represents the input for joining a group by code
type JoinGroupInput struct {
	DisplayName string `json:"display_name"` // The joining member's display name
}

// RegistryUsecase defines the interface for group registry use cases
type RegistryUsecase interface {
	// CreateGroup generates a collision-checked join code, creates the group
	// and enrolls the creator as its first member.
	CreateGroup(ctx context.Context, userID string, input *CreateGroupInput) (*entity.Group, error)

	// JoinGroup inserts a membership for the caller. Joining twice is a no-op.
	JoinGroup(ctx context.Context, userID, groupID string, input *JoinGroupInput) (*entity.Group, error)

	// GetGroup looks up a group by its join code.
	GetGroup(ctx context.Context, groupID string) (*entity.Group, error)

	// ListMembers returns the group's membership roster.
	ListMembers(ctx context.Context, groupID string) ([]*entity.Membership, error)

	// GroupInviteQR renders a QR code PNG carrying the group's join code.
	GroupInviteQR(ctx context.Context, groupID string) ([]byte, error)
}
