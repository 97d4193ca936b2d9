package repository

import (
	"context"
	"errors"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a batch or code does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateBatch is returned when a batch already exists for the order number.
	ErrDuplicateBatch = errors.New("batch already exists for order")
)

// PackagingProfileRepositoryInterface defines the packaging profile store.
type PackagingProfileRepositoryInterface interface {
	GetActive(ctx context.Context) (*model.PackagingProfile, error)
	Create(ctx context.Context, bufferPercent decimal.Decimal, unitsPerCase int, createdBy string) (*model.PackagingProfile, error)
	List(ctx context.Context, limit int) ([]model.PackagingProfile, error)
}

// LogsRepositoryInterface defines the log store.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// CodeStore persists generated batches and answers scan lookups.
type CodeStore interface {
	// SaveBatch writes the batch and all its codes atomically.
	// It returns ErrDuplicateBatch when the order already has a batch.
	SaveBatch(ctx context.Context, batch *model.StoredBatch) error
	// BatchExists reports whether a batch is stored for orderNumber.
	BatchExists(ctx context.Context, orderNumber string) (bool, error)
	// GetBatch loads a batch with its codes in case and sequence order.
	GetBatch(ctx context.Context, orderNumber string) (*model.StoredBatch, error)
	// FindCode loads one stored code of the given kind.
	FindCode(ctx context.Context, kind model.CodeKind, code string) (*model.CodeRecord, error)
	// HealthCheck pings the database.
	HealthCheck(ctx context.Context) error
}
