package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/export"
	"github.com/guttosm/trace-service/internal/metrics"
	"github.com/guttosm/trace-service/internal/repository"
	"github.com/guttosm/trace-service/internal/service/cache"
	"github.com/guttosm/trace-service/internal/tracecode"
	"golang.org/x/crypto/blake2b"
)

var (
	// ErrBatchExists is returned when the order already has a stored batch.
	ErrBatchExists = errors.New("batch already exists for order")
	// ErrBatchNotFound is returned when no batch is stored for the order.
	ErrBatchNotFound = errors.New("batch not found")
	// ErrEmptyBatch is returned when a batch to persist has no base units.
	ErrEmptyBatch = errors.New("batch has no units")
	// ErrInvalidCode is returned when a looked-up string is not a recognised code.
	ErrInvalidCode = errors.New("invalid code")
	// ErrCodeNotFound is returned when a well-formed code was never generated.
	ErrCodeNotFound = errors.New("code not found")
)

const (
	modePreview = "preview"
	modePersist = "persist"
)

// BatchService generates, persists, exports and looks up QR batches.
type BatchService interface {
	// Preview generates a batch without storing it.
	Preview(ctx context.Context, req dto.BatchRequest) (model.QRBatchResult, error)
	// Generate generates a batch and stores it. actor is recorded as its creator.
	Generate(ctx context.Context, req dto.BatchRequest, actor string) (*model.StoredBatch, error)
	// Get loads a stored batch.
	Get(ctx context.Context, orderNumber string) (*model.StoredBatch, error)
	// Export writes the workbook export of a stored batch to w.
	Export(ctx context.Context, orderNumber string, w io.Writer) error
	// Lookup resolves a scanned code to its stored record.
	Lookup(ctx context.Context, code string) (*model.CodeRecord, error)
	// ValidateCode parses a code string without touching storage.
	ValidateCode(code string) (model.ParsedCode, bool)
	// InvalidateCache drops memoized previews, e.g. after the packaging profile changes.
	InvalidateCache()
}

// BatchOption configures a BatchServiceImpl.
type BatchOption func(*BatchServiceImpl)

// WithCache memoizes previews in a sharded TTL cache.
func WithCache(capacity int, ttl time.Duration) BatchOption {
	return func(s *BatchServiceImpl) {
		if capacity > 0 && ttl > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithPreviewCache uses c for memoized previews.
func WithPreviewCache(c cache.Cache) BatchOption {
	return func(s *BatchServiceImpl) {
		s.cache = c
	}
}

// WithDefaultPolicy sets the rounding policy used when a request names none.
func WithDefaultPolicy(p model.RoundingPolicy) BatchOption {
	return func(s *BatchServiceImpl) {
		if p.Valid() {
			s.defaultPolicy = p
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) BatchOption {
	return func(s *BatchServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// BatchServiceImpl implements BatchService.
type BatchServiceImpl struct {
	store         repository.CodeStore
	profiles      PackagingProfileService
	exporter      *export.Exporter
	cache         cache.Cache
	defaultPolicy model.RoundingPolicy
	now           func() time.Time
}

// NewBatchService creates a batch service. store may be nil, in which case only
// Preview and ValidateCode work.
func NewBatchService(store repository.CodeStore, profiles PackagingProfileService, exporter *export.Exporter, opts ...BatchOption) *BatchServiceImpl {
	if exporter == nil {
		exporter = export.New("")
	}
	s := &BatchServiceImpl{
		store:         store,
		profiles:      profiles,
		exporter:      exporter,
		defaultPolicy: model.RoundPerLine,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// request is a batch request with every default resolved.
type request struct {
	Config model.BatchConfig     `json:"config"`
	Policy model.RoundingPolicy  `json:"policy"`
	Lines  []model.OrderLineSpec `json:"lines"`
}

func (s *BatchServiceImpl) resolve(ctx context.Context, req dto.BatchRequest) request {
	r := request{
		Config: model.BatchConfig{OrderNumber: req.OrderNumber},
		Policy: req.RoundingPolicy,
		Lines:  req.Lines,
	}
	if r.Policy == "" {
		r.Policy = s.defaultPolicy
	}

	if req.BufferPercent != nil && req.UnitsPerCase != nil {
		r.Config.BufferPercent = *req.BufferPercent
		r.Config.UnitsPerCase = *req.UnitsPerCase
		return r
	}

	profile := model.DefaultPackagingProfile()
	if s.profiles != nil {
		profile = s.profiles.Active(ctx)
	}
	r.Config.BufferPercent = profile.BufferPercent
	r.Config.UnitsPerCase = profile.UnitsPerCase
	if req.BufferPercent != nil {
		r.Config.BufferPercent = *req.BufferPercent
	}
	if req.UnitsPerCase != nil {
		r.Config.UnitsPerCase = *req.UnitsPerCase
	}
	return r
}

// fingerprint identifies a resolved request. Generation is pure, so equal
// fingerprints always produce equal batches.
func (r request) fingerprint() string {
	data, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (r request) generate(mode string) (model.QRBatchResult, error) {
	start := time.Now()
	result, err := tracecode.GenerateBatch(r.Config, r.Lines, tracecode.WithRoundingPolicy(r.Policy))
	if err != nil {
		metrics.RecordBatchGeneration(mode, "error", time.Since(start))
		return model.QRBatchResult{}, err
	}
	metrics.RecordBatchGeneration(mode, "success", time.Since(start))
	return result, nil
}

func (s *BatchServiceImpl) Preview(ctx context.Context, req dto.BatchRequest) (model.QRBatchResult, error) {
	r := s.resolve(ctx, req)

	key := r.fingerprint()
	if s.cache != nil && key != "" {
		if result, ok := s.cache.Get(key); ok {
			return result.Clone(), nil
		}
	}

	result, err := r.generate(modePreview)
	if err != nil {
		return model.QRBatchResult{}, err
	}
	if s.cache != nil && key != "" {
		s.cache.Set(key, result.Clone())
	}
	return result, nil
}

func (s *BatchServiceImpl) Generate(ctx context.Context, req dto.BatchRequest, actor string) (*model.StoredBatch, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}

	r := s.resolve(ctx, req)
	var units int
	for _, l := range r.Lines {
		units += l.Quantity
	}
	if units == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBatch, r.Config.OrderNumber)
	}

	exists, err := s.store.BatchExists(ctx, r.Config.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("check existing batch: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrBatchExists, r.Config.OrderNumber)
	}

	result, err := r.generate(modePersist)
	if err != nil {
		return nil, err
	}

	stored := &model.StoredBatch{
		ID:        uuid.NewString(),
		CreatedBy: actor,
		CreatedAt: s.now().UTC(),
		Result:    result,
	}

	start := time.Now()
	err = s.store.SaveBatch(ctx, stored)
	metrics.RecordBatchPersist(time.Since(start))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateBatch) {
			return nil, fmt.Errorf("%w: %s", ErrBatchExists, r.Config.OrderNumber)
		}
		return nil, fmt.Errorf("save batch: %w", err)
	}

	metrics.RecordBatchCodes(result.TotalMasterCodes, result.EmittedCodes(), result.Discrepancy())
	return stored, nil
}

func (s *BatchServiceImpl) Get(ctx context.Context, orderNumber string) (*model.StoredBatch, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	batch, err := s.store.GetBatch(ctx, orderNumber)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrBatchNotFound, orderNumber)
	}
	return batch, err
}

func (s *BatchServiceImpl) Export(ctx context.Context, orderNumber string, w io.Writer) error {
	batch, err := s.Get(ctx, orderNumber)
	if err != nil {
		metrics.RecordExport("error")
		return err
	}
	if err := s.exporter.WriteXLSX(w, batch.Result); err != nil {
		metrics.RecordExport("error")
		return fmt.Errorf("write export: %w", err)
	}
	metrics.RecordExport("success")
	return nil
}

func (s *BatchServiceImpl) Lookup(ctx context.Context, code string) (*model.CodeRecord, error) {
	parsed, ok := tracecode.ParseCode(code)
	if !ok {
		return nil, ErrInvalidCode
	}
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	record, err := s.store.FindCode(ctx, parsed.Kind, code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCodeNotFound
	}
	return record, err
}

func (s *BatchServiceImpl) ValidateCode(code string) (model.ParsedCode, bool) {
	parsed, ok := tracecode.ParseCode(code)
	if !ok {
		metrics.RecordCodeValidation("invalid")
		return model.ParsedCode{}, false
	}
	metrics.RecordCodeValidation(string(parsed.Kind))
	return parsed, true
}

func (s *BatchServiceImpl) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the preview cache.
func (s *BatchServiceImpl) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
