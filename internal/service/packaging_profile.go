package service

import (
	"context"
	"errors"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/logger"
	"github.com/guttosm/trace-service/internal/repository"
	"github.com/shopspring/decimal"
)

// ErrRepositoryNotConfigured is returned when an operation needs a store that was not wired.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// PackagingProfileService manages the buffer and case-size defaults.
type PackagingProfileService interface {
	// Active returns the stored active profile, or the configured fallback
	// when none is stored or the store is unavailable.
	Active(ctx context.Context) model.PackagingProfile
	Update(ctx context.Context, bufferPercent decimal.Decimal, unitsPerCase int, createdBy string) (*model.PackagingProfile, error)
	History(ctx context.Context, limit int) ([]model.PackagingProfile, error)
}

// PackagingProfileServiceImpl implements PackagingProfileService.
type PackagingProfileServiceImpl struct {
	repo     repository.PackagingProfileRepositoryInterface
	fallback model.PackagingProfile
}

// NewPackagingProfileService creates the service. repo may be nil, in which
// case Active always returns fallback and writes fail.
func NewPackagingProfileService(repo repository.PackagingProfileRepositoryInterface, fallback model.PackagingProfile) PackagingProfileService {
	if fallback.UnitsPerCase <= 0 {
		fallback = model.DefaultPackagingProfile()
	}
	return &PackagingProfileServiceImpl{repo: repo, fallback: fallback}
}

func (s *PackagingProfileServiceImpl) Active(ctx context.Context) model.PackagingProfile {
	if s.repo == nil {
		return s.fallback
	}
	profile, err := s.repo.GetActive(ctx)
	if err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to load packaging profile, using defaults")
		return s.fallback
	}
	if profile == nil {
		return s.fallback
	}
	return *profile
}

func (s *PackagingProfileServiceImpl) Update(ctx context.Context, bufferPercent decimal.Decimal, unitsPerCase int, createdBy string) (*model.PackagingProfile, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, bufferPercent, unitsPerCase, createdBy)
}

func (s *PackagingProfileServiceImpl) History(ctx context.Context, limit int) ([]model.PackagingProfile, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}
