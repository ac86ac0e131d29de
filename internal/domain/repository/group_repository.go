// Package repository defines the persistence interfaces required by the domain.
package repository

import (
	"context"

	"huddle/internal/domain/entity"
	"huddle/internal/errors"
)

var (
	// ErrGroupNotFound is returned when no group exists for the given join code.
	ErrGroupNotFound = errors.New("group not found")
	// ErrGroupCodeTaken is returned when a generated join code collides with an
	// existing group; the caller retries with a fresh code.
	ErrGroupCodeTaken = errors.New("group code already taken")
)

// GroupRepository persists groups and their membership relation.
type GroupRepository interface {
	// CreateGroup inserts a new group. Returns ErrGroupCodeTaken when the join
	// code is already in use.
	CreateGroup(ctx context.Context, group *entity.Group) error

	// FindGroupByID retrieves a group by its join code. Returns
	// ErrGroupNotFound when absent.
	FindGroupByID(ctx context.Context, groupID string) (*entity.Group, error)

	// AddMember inserts a membership if absent. Joining twice is a no-op, not
	// an error.
	AddMember(ctx context.Context, membership *entity.Membership) error

	// ListMembers returns all memberships of a group.
	ListMembers(ctx context.Context, groupID string) ([]*entity.Membership, error)
}
