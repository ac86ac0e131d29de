package impl

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"huddle/config"
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

// presenceServiceFixtures holds all test dependencies for presence service tests.
type presenceServiceFixtures struct {
	service      usecase.PresenceUsecase
	locationRepo *mockRepo.MockLocationRepository
	groupRepo    *mockRepo.MockGroupRepository
	detector     *mockSvc.MockBoundaryDetector
	cfg          *config.PresenceConfig
}

func createTestPresenceService(t *testing.T) presenceServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)
	detector := mockSvc.NewMockBoundaryDetector(t)

	cfg := &config.Config{
		Presence: &config.PresenceConfig{
			TTL:             15 * time.Minute,
			OnlineWindow:    time.Minute,
			MinAccuracy:     10,
			MaxAccuracy:     250,
			MaxStatusLength: 160,
			EventFeedSize:   6,
			EventBufferSize: 16,
		},
	}
	service := NewPresenceService(locationRepo, groupRepo, detector, cfg)

	return presenceServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
		groupRepo:    groupRepo,
		detector:     detector,
		cfg:          cfg.Presence,
	}
}

func validReport() *usecase.ReportLocationInput {
	return &usecase.ReportLocationInput{
		Latitude:        25.0339,
		Longitude:       121.5645,
		Accuracy:        30,
		Status:          "on my way",
		ClientTimestamp: time.Now().Add(-2 * time.Minute),
	}
}

func TestPresenceService_ReportLocation_Success(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "GRP123").
		Return(&entity.Group{ID: "GRP123"}, nil)

	var stored *entity.LocationRecord
	fx.locationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.LocationRecord")).
		Run(func(_ context.Context, record *entity.LocationRecord) {
			stored = record
		}).
		Return(nil)

	fx.detector.EXPECT().
		Observe(ctx, "GRP123", "user-1", 25.0339, 121.5645, mock.AnythingOfType("time.Time")).
		Return()

	before := time.Now()
	record, err := fx.service.ReportLocation(ctx, "GRP123", "user-1", validReport())
	require.NoError(t, err)
	require.NotNil(t, record)
	require.NotNil(t, stored)

	// The committed timestamp is the server clock, not the client's.
	assert.False(t, record.UpdatedAt.Before(before))
	assert.Equal(t, record.UpdatedAt.Add(fx.cfg.TTL), record.ExpiresAt)
	// Accuracy is stored raw; clamping happens at read time.
	assert.Equal(t, 30.0, record.Accuracy)
	assert.Equal(t, "on my way", record.Status)
}

func TestPresenceService_ReportLocation_RejectsBadCoordinates(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"latitude out of range", 90.5, 0},
		{"longitude out of range", 0, -180.5},
		{"NaN latitude", math.NaN(), 0},
		{"infinite longitude", 0, math.Inf(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validReport()
			input.Latitude = tc.lat
			input.Longitude = tc.lng

			record, err := fx.service.ReportLocation(ctx, "GRP123", "user-1", input)
			assert.Nil(t, record)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_COORDINATES", appErr.ErrorCode())
		})
	}
}

func TestPresenceService_ReportLocation_RejectsBadAccuracy(t *testing.T) {
	fx := createTestPresenceService(t)

	input := validReport()
	input.Accuracy = -1

	record, err := fx.service.ReportLocation(context.Background(), "GRP123", "user-1", input)
	assert.Nil(t, record)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestPresenceService_ReportLocation_StatusTooLong(t *testing.T) {
	fx := createTestPresenceService(t)

	input := validReport()
	input.Status = strings.Repeat("字", fx.cfg.MaxStatusLength+1)

	record, err := fx.service.ReportLocation(context.Background(), "GRP123", "user-1", input)
	assert.Nil(t, record)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATUS_TOO_LONG", appErr.ErrorCode())
}

func TestPresenceService_ReportLocation_GroupMissing(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "NOPE42").
		Return(nil, repository.ErrGroupNotFound)

	record, err := fx.service.ReportLocation(ctx, "NOPE42", "user-1", validReport())
	assert.Nil(t, record)
	assert.Equal(t, domainerrors.ErrGroupNotFound, err)
}

func TestPresenceService_ReportLocation_StoreFailureIsRetryable(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "GRP123").
		Return(&entity.Group{ID: "GRP123"}, nil)

	fx.locationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.LocationRecord")).
		Return(errors.New("store down"))

	record, err := fx.service.ReportLocation(ctx, "GRP123", "user-1", validReport())
	assert.Nil(t, record)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAVAILABLE", appErr.ErrorCode())
	assert.True(t, appErr.Retryable())
}

func TestPresenceService_SetStatus_Success(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	updated := &entity.LocationRecord{
		GroupID: "GRP123",
		UserID:  "user-1",
		Status:  "grabbing coffee",
	}
	fx.locationRepo.EXPECT().
		UpdateStatus(ctx, "GRP123", "user-1", "grabbing coffee", mock.AnythingOfType("time.Time"), fx.cfg.TTL).
		Return(updated, nil)

	record, err := fx.service.SetStatus(ctx, "GRP123", "user-1", "grabbing coffee")
	require.NoError(t, err)
	assert.Equal(t, updated, record)
}

func TestPresenceService_SetStatus_NoLiveRecord(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		UpdateStatus(ctx, "GRP123", "user-1", "hi", mock.AnythingOfType("time.Time"), fx.cfg.TTL).
		Return(nil, repository.ErrRecordNotFound)

	record, err := fx.service.SetStatus(ctx, "GRP123", "user-1", "hi")
	assert.Nil(t, record)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RECORD_NOT_FOUND", appErr.ErrorCode())
}

func TestPresenceService_GroupSnapshot_ClampsAccuracyAndDerivesOnline(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	now := time.Now()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "GRP123").
		Return(&entity.Group{ID: "GRP123"}, nil)

	fx.locationRepo.EXPECT().
		Snapshot(ctx, "GRP123", mock.AnythingOfType("time.Time")).
		Return([]*entity.LocationRecord{
			{UserID: "precise", Accuracy: 3, UpdatedAt: now.Add(-10 * time.Second), ExpiresAt: now.Add(time.Hour)},
			{UserID: "vague", Accuracy: 4000, UpdatedAt: now.Add(-5 * time.Minute), ExpiresAt: now.Add(time.Hour)},
		}, nil)

	members, err := fx.service.GroupSnapshot(ctx, "GRP123")
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Raw 3m reads as the 10m floor; raw 4000m reads as the 250m ceiling.
	assert.Equal(t, fx.cfg.MinAccuracy, members[0].Accuracy)
	assert.Equal(t, fx.cfg.MaxAccuracy, members[1].Accuracy)

	// Recent reporter is online; one quiet past the window is present but stale.
	assert.True(t, members[0].Online)
	assert.False(t, members[1].Online)
}

func TestPresenceService_GroupSnapshot_GroupMissing(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().
		FindGroupByID(ctx, "NOPE42").
		Return(nil, repository.ErrGroupNotFound)

	members, err := fx.service.GroupSnapshot(ctx, "NOPE42")
	assert.Nil(t, members)
	assert.Equal(t, domainerrors.ErrGroupNotFound, err)
}
