package repository

import (
	"context"
	"errors"

	"github.com/guttosm/trace-service/internal/circuitbreaker"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// PackagingProfileRepositoryWithCircuitBreaker guards a packaging profile store with a circuit breaker.
type PackagingProfileRepositoryWithCircuitBreaker struct {
	repo           PackagingProfileRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPackagingProfileRepositoryWithCircuitBreaker wraps repo with cb.
func NewPackagingProfileRepositoryWithCircuitBreaker(repo PackagingProfileRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PackagingProfileRepositoryWithCircuitBreaker {
	return &PackagingProfileRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active profile. While the circuit is open it returns
// nil, nil so callers fall back to the configured defaults.
func (r *PackagingProfileRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*model.PackagingProfile, error) {
	result, err := circuitbreaker.Run(ctx, r.circuitBreaker, func() (*model.PackagingProfile, error) {
		return r.repo.GetActive(ctx)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Create stores a new active profile.
func (r *PackagingProfileRepositoryWithCircuitBreaker) Create(ctx context.Context, bufferPercent decimal.Decimal, unitsPerCase int, createdBy string) (*model.PackagingProfile, error) {
	return circuitbreaker.Run(ctx, r.circuitBreaker, func() (*model.PackagingProfile, error) {
		return r.repo.Create(ctx, bufferPercent, unitsPerCase, createdBy)
	})
}

// List returns stored profiles newest first.
func (r *PackagingProfileRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.PackagingProfile, error) {
	return circuitbreaker.Run(ctx, r.circuitBreaker, func() ([]model.PackagingProfile, error) {
		return r.repo.List(ctx, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PackagingProfileRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards a log store with a circuit breaker.
// Writes are dropped silently while the circuit is open; logging must never fail a request.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores entries in bulk.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query returns matching entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*LogEntryDocument, error) {
	return circuitbreaker.Run(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the number of matching entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return circuitbreaker.Run(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
