package impl

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"huddle/config"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	"huddle/internal/errors"
	"huddle/internal/usecase"
)

type presenceService struct {
	locationRepo repository.LocationRepository
	groupRepo    repository.GroupRepository
	detector     service.BoundaryDetector
	cfg          *config.PresenceConfig
}

// NewPresenceService creates a new presence service instance
func NewPresenceService(
	locationRepo repository.LocationRepository,
	groupRepo repository.GroupRepository,
	detector service.BoundaryDetector,
	cfg *config.Config,
) usecase.PresenceUsecase {
	return &presenceService{
		locationRepo: locationRepo,
		groupRepo:    groupRepo,
		detector:     detector,
		cfg:          cfg.Presence,
	}
}

// ReportLocation validates the sample and commits it under the server clock.
func (s *presenceService) ReportLocation(ctx context.Context, groupID, userID string, input *usecase.ReportLocationInput) (*entity.LocationRecord, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}
	if input.Accuracy < 0 || math.IsNaN(input.Accuracy) || math.IsInf(input.Accuracy, 0) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("accuracy must be a finite value >= 0 meters")
	}
	if utf8.RuneCountInString(input.Status) > s.cfg.MaxStatusLength {
		return nil, domainerrors.ErrStatusTooLong.WithDetails(
			fmt.Sprintf("status must be at most %d characters", s.cfg.MaxStatusLength))
	}

	if _, err := s.groupRepo.FindGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group")
	}

	now := time.Now()
	record := &entity.LocationRecord{
		GroupID:   groupID,
		UserID:    userID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy, // raw; clamped at read time only
		Status:    input.Status,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}

	if err := s.locationRepo.Upsert(ctx, record); err != nil {
		return nil, domainerrors.ErrUnavailable.WrapMessage("failed to commit location report")
	}

	// The detector runs after the commit; its outcome never affects the ack.
	s.detector.Observe(ctx, groupID, userID, input.Latitude, input.Longitude, now)

	return record, nil
}

// SetStatus updates the status of the caller's live record and refreshes TTL.
func (s *presenceService) SetStatus(ctx context.Context, groupID, userID, status string) (*entity.LocationRecord, error) {
	if utf8.RuneCountInString(status) > s.cfg.MaxStatusLength {
		return nil, domainerrors.ErrStatusTooLong.WithDetails(
			fmt.Sprintf("status must be at most %d characters", s.cfg.MaxStatusLength))
	}

	record, err := s.locationRepo.UpdateStatus(ctx, groupID, userID, status, time.Now(), s.cfg.TTL)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrRecordNotFound.WithDetails("report a location before setting a status")
	}
	if err != nil {
		return nil, domainerrors.ErrUnavailable.WrapMessage("failed to update status")
	}

	return record, nil
}

// GroupSnapshot serves the poll path: all non-expired records of the group
// with read-time accuracy clamping and the derived online flag.
func (s *presenceService) GroupSnapshot(ctx context.Context, groupID string) ([]*usecase.MemberPresence, error) {
	if _, err := s.groupRepo.FindGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group")
	}

	now := time.Now()
	records, err := s.locationRepo.Snapshot(ctx, groupID, now)
	if err != nil {
		return nil, domainerrors.ErrUnavailable.WrapMessage("failed to read group snapshot")
	}

	members := make([]*usecase.MemberPresence, 0, len(records))
	for _, record := range records {
		members = append(members, &usecase.MemberPresence{
			GroupID:   record.GroupID,
			UserID:    record.UserID,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
			Accuracy:  clamp(record.Accuracy, s.cfg.MinAccuracy, s.cfg.MaxAccuracy),
			Status:    record.Status,
			UpdatedAt: record.UpdatedAt,
			ExpiresAt: record.ExpiresAt,
			Online:    record.Online(now, s.cfg.OnlineWindow),
		})
	}

	return members, nil
}

// validateCoordinates rejects non-finite or out-of-range coordinates; the
// service never clamps them into range.
func validateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return domainerrors.ErrInvalidCoordinates.WithDetails("latitude must be a finite value in [-90, 90]")
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return domainerrors.ErrInvalidCoordinates.WithDetails("longitude must be a finite value in [-180, 180]")
	}

	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
