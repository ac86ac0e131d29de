package impl

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"huddle/internal/domain/constants"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	"huddle/internal/errors"
	"huddle/internal/usecase"
)

// codeGenerationAttempts bounds retries when a generated join code collides.
const codeGenerationAttempts = 5

type registryService struct {
	groupRepo repository.GroupRepository
	qrSvc     service.QRCodeService
}

// NewRegistryService creates a new group registry service instance
func NewRegistryService(groupRepo repository.GroupRepository, qrSvc service.QRCodeService) usecase.RegistryUsecase {
	return &registryService{
		groupRepo: groupRepo,
		qrSvc:     qrSvc,
	}
}

// CreateGroup creates a group under a fresh join code and enrolls the creator.
func (s *registryService) CreateGroup(ctx context.Context, userID string, input *usecase.CreateGroupInput) (*entity.Group, error) {
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("display_name must not be empty")
	}

	var group *entity.Group
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code, err := newJoinCode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate join code")
		}

		candidate := &entity.Group{
			ID:          code,
			DisplayName: displayName,
			CreatedAt:   time.Now(),
		}

		err = s.groupRepo.CreateGroup(ctx, candidate)
		if errors.Is(err, repository.ErrGroupCodeTaken) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create group")
		}

		group = candidate

		break
	}
	if group == nil {
		return nil, domainerrors.ErrGroupCodeExhausted
	}

	membership := &entity.Membership{
		GroupID:     group.ID,
		UserID:      userID,
		DisplayName: strings.TrimSpace(input.MemberDisplayName),
		JoinedAt:    time.Now(),
	}
	if err := s.groupRepo.AddMember(ctx, membership); err != nil {
		return nil, errors.Wrap(err, "failed to enroll group creator")
	}

	return group, nil
}

// JoinGroup inserts the caller into the group's membership. Idempotent.
func (s *registryService) JoinGroup(ctx context.Context, userID, groupID string, input *usecase.JoinGroupInput) (*entity.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if errors.Is(err, repository.ErrGroupNotFound) {
		return nil, domainerrors.ErrGroupNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find group")
	}

	membership := &entity.Membership{
		GroupID:     group.ID,
		UserID:      userID,
		DisplayName: strings.TrimSpace(input.DisplayName),
		JoinedAt:    time.Now(),
	}
	if err := s.groupRepo.AddMember(ctx, membership); err != nil {
		return nil, errors.Wrap(err, "failed to add member")
	}

	return group, nil
}

// GetGroup looks up a group by its join code.
func (s *registryService) GetGroup(ctx context.Context, groupID string) (*entity.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if errors.Is(err, repository.ErrGroupNotFound) {
		return nil, domainerrors.ErrGroupNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find group")
	}

	return group, nil
}

// ListMembers returns the group's roster.
func (s *registryService) ListMembers(ctx context.Context, groupID string) ([]*entity.Membership, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	return members, nil
}

// GroupInviteQR renders the invite QR for an existing group.
func (s *registryService) GroupInviteQR(ctx context.Context, groupID string) ([]byte, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrSvc.GenerateInviteQR(group.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR")
	}

	return png, nil
}

// newJoinCode draws a short code from the unambiguous alphabet.
func newJoinCode() (string, error) {
	buf := make([]byte, constants.JoinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	var code strings.Builder
	code.Grow(constants.JoinCodeLength)
	for _, b := range buf {
		code.WriteByte(constants.JoinCodeAlphabet[int(b)%len(constants.JoinCodeAlphabet)])
	}

	return code.String(), nil
}
