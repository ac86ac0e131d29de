package impl

import (
	"context"
	"testing"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	mockRepo "huddle/internal/mocks/repository"
	mockSvc "huddle/internal/mocks/service"
	"huddle/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// registryServiceFixtures holds all test dependencies for registry service tests.
type registryServiceFixtures struct {
	service   usecase.RegistryUsecase
	groupRepo *mockRepo.MockGroupRepository
	qrSvc     *mockSvc.MockQRCodeService
}

func createTestRegistryService(t *testing.T) registryServiceFixtures {
	groupRepo := mockRepo.NewMockGroupRepository(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	service := NewRegistryService(groupRepo, qrSvc)

	return registryServiceFixtures{
		service:   service,
		groupRepo: groupRepo,
		qrSvc:     qrSvc,
	}
}

func TestRegistryService_CreateGroup_Success(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	var createdCode string
	fx.groupRepo.EXPECT().
		CreateGroup(ctx, mock.AnythingOfType("*entity.Group")).
		Run(func(_ context.Context, group *entity.Group) {
			createdCode = group.ID
		}).
		Return(nil)

	fx.groupRepo.EXPECT().
		AddMember(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(nil)

	group, err := fx.service.CreateGroup(ctx, "user-1", &usecase.CreateGroupInput{
		DisplayName:       "Road Trip",
		MemberDisplayName: "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "Road Trip", group.DisplayName)
	assert.Len(t, group.ID, 6)
	assert.Equal(t, createdCode, group.ID)
}

func TestRegistryService_CreateGroup_EmptyName(t *testing.T) {
	fx := createTestRegistryService(t)

	group, err := fx.service.CreateGroup(context.Background(), "user-1", &usecase.CreateGroupInput{
		DisplayName: "   ",
	})
	assert.Nil(t, group)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestRegistryService_CreateGroup_RetriesOnCodeCollision(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	// First generated code collides; the service retries with a fresh one.
	fx.groupRepo.EXPECT().
		CreateGroup(ctx, mock.AnythingOfType("*entity.Group")).
		Return(repository.ErrGroupCodeTaken).
		Once()

	fx.groupRepo.EXPECT().
		CreateGroup(ctx, mock.AnythingOfType("*entity.Group")).
		Return(nil).
		Once()

	fx.groupRepo.EXPECT().
		AddMember(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(nil)

	group, err := fx.service.CreateGroup(ctx, "user-1", &usecase.CreateGroupInput{
		DisplayName: "Road Trip",
	})
	require.NoError(t, err)
	assert.NotNil(t, group)
}

func TestRegistryService_CreateGroup_CodeSpaceExhausted(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		CreateGroup(ctx, mock.AnythingOfType("*entity.Group")).
		Return(repository.ErrGroupCodeTaken).
		Times(codeGenerationAttempts)

	group, err := fx.service.CreateGroup(ctx, "user-1", &usecase.CreateGroupInput{
		DisplayName: "Road Trip",
	})
	assert.Nil(t, group)
	assert.Equal(t, domainerrors.ErrGroupCodeExhausted, err)
}

func TestRegistryService_JoinGroup_Success(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	existing := &entity.Group{ID: "ABC234", DisplayName: "Road Trip"}

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "ABC234").
		Return(existing, nil)

	fx.groupRepo.EXPECT().
		AddMember(ctx, mock.AnythingOfType("*entity.Membership")).
		Run(func(_ context.Context, membership *entity.Membership) {
			assert.Equal(t, "ABC234", membership.GroupID)
			assert.Equal(t, "user-2", membership.UserID)
			assert.Equal(t, "Bob", membership.DisplayName)
		}).
		Return(nil)

	group, err := fx.service.JoinGroup(ctx, "user-2", "ABC234", &usecase.JoinGroupInput{
		DisplayName: "Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, existing, group)
}

func TestRegistryService_JoinGroup_NotFound(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "NOPE42").
		Return(nil, repository.ErrGroupNotFound)

	group, err := fx.service.JoinGroup(ctx, "user-2", "NOPE42", &usecase.JoinGroupInput{})
	assert.Nil(t, group)
	assert.Equal(t, domainerrors.ErrGroupNotFound, err)
}

func TestRegistryService_GetGroup(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	existing := &entity.Group{ID: "ABC234", DisplayName: "Road Trip"}
	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "ABC234").
		Return(existing, nil)

	group, err := fx.service.GetGroup(ctx, "ABC234")
	require.NoError(t, err)
	assert.Equal(t, existing, group)
}

func TestRegistryService_ListMembers(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "ABC234").
		Return(&entity.Group{ID: "ABC234"}, nil)

	expected := []*entity.Membership{
		{GroupID: "ABC234", UserID: "user-1"},
		{GroupID: "ABC234", UserID: "user-2"},
	}
	fx.groupRepo.EXPECT().
		ListMembers(ctx, "ABC234").
		Return(expected, nil)

	members, err := fx.service.ListMembers(ctx, "ABC234")
	require.NoError(t, err)
	assert.Equal(t, expected, members)
}

func TestRegistryService_GroupInviteQR(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "ABC234").
		Return(&entity.Group{ID: "ABC234"}, nil)

	fx.qrSvc.EXPECT().
		GenerateInviteQR("ABC234").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.GroupInviteQR(ctx, "ABC234")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRegistryService_GroupInviteQR_RenderError(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "ABC234").
		Return(&entity.Group{ID: "ABC234"}, nil)

	fx.qrSvc.EXPECT().
		GenerateInviteQR("ABC234").
		Return(nil, errors.New("render failed"))

	png, err := fx.service.GroupInviteQR(ctx, "ABC234")
	assert.Nil(t, png)
	assert.Contains(t, err.Error(), "failed to generate invite QR")
}

func TestNewJoinCode_AlphabetAndLength(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := newJoinCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			// The alphabet omits ambiguous characters such as 0/O and 1/I.
			assert.NotContains(t, "01IO", string(r))
		}
		seen[code] = struct{}{}
	}
	// Collisions across 100 draws from a 32^6 space would point at a broken generator.
	assert.Greater(t, len(seen), 95)
}
