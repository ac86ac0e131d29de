// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// CreateGroup persists a new group under its join code.
func (repo *groupRepository) CreateGroup(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		// A primary key collision means the join code is in use; the caller
		// regenerates and retries.
		if isUniqueConstraintViolation(err) {
			return repository.ErrGroupCodeTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required group information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.CreatedAt = groupM.CreatedAt

	return nil
}

// FindGroupByID retrieves a group by its join code.
func (repo *groupRepository) FindGroupByID(ctx context.Context, groupID string) (*entity.Group, error) {
	var groupM model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", groupID).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by ID")
	}

	return toGroupDomain(&groupM), nil
}

// AddMember inserts a membership row. Re-joining is a no-op thanks to the
// composite primary key conflict clause.
func (repo *groupRepository) AddMember(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(membershipM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add group member")
	}

	membership.JoinedAt = membershipM.JoinedAt

	return nil
}

// ListMembers returns all memberships of a group ordered by join time.
func (repo *groupRepository) ListMembers(ctx context.Context, groupID string) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list group members")
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// --- Mapper Functions ---

// toGroupDomain converts a GORM GroupModel to a domain Group entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:          data.ID,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
	}
}

// fromGroupDomain converts a domain Group entity to a GORM GroupModel.
func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:          data.ID,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
	}
}

// toMembershipDomain converts a GORM MembershipModel to a domain Membership entity.
func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		GroupID:     data.GroupID,
		UserID:      data.UserID,
		DisplayName: data.DisplayName,
		JoinedAt:    data.JoinedAt,
	}
}

// fromMembershipDomain converts a domain Membership entity to a GORM MembershipModel.
func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		GroupID:     data.GroupID,
		UserID:      data.UserID,
		DisplayName: data.DisplayName,
		JoinedAt:    data.JoinedAt,
	}
}
