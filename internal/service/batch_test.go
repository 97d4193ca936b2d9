//go:build !integration

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/export"
	"github.com/guttosm/trace-service/internal/mocks"
	"github.com/guttosm/trace-service/internal/repository"
	"github.com/guttosm/trace-service/internal/tracecode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubProfiles struct {
	profile model.PackagingProfile
	calls   int
}

func (s *stubProfiles) Active(context.Context) model.PackagingProfile {
	s.calls++
	return s.profile
}

func (s *stubProfiles) Update(context.Context, decimal.Decimal, int, string) (*model.PackagingProfile, error) {
	return nil, ErrRepositoryNotConfigured
}

func (s *stubProfiles) History(context.Context, int) ([]model.PackagingProfile, error) {
	return nil, ErrRepositoryNotConfigured
}

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleRequest() dto.BatchRequest {
	return dto.BatchRequest{
		OrderNumber:   "ORD-HM-2501-01",
		BufferPercent: decPtr("10"),
		UnitsPerCase:  intPtr(100),
		Lines: []model.OrderLineSpec{
			{ProductCode: "VAPE001", VariantCode: "MINT", Quantity: 50},
			{ProductCode: "VAPE001", VariantCode: "BERRY", Quantity: 45},
		},
	}
}

func newTestBatchService(store repository.CodeStore, profiles PackagingProfileService, opts ...BatchOption) *BatchServiceImpl {
	return NewBatchService(store, profiles, export.New("http://localhost:8080"), opts...)
}

func TestBatchService_Preview(t *testing.T) {
	t.Run("explicit parameters", func(t *testing.T) {
		profiles := &stubProfiles{profile: model.DefaultPackagingProfile()}
		svc := newTestBatchService(nil, profiles)

		result, err := svc.Preview(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.Equal(t, 95, result.TotalBaseUnits)
		assert.Equal(t, 105, result.TotalUniqueCodes)
		assert.Equal(t, 2, result.TotalMasterCodes)
		assert.Equal(t, model.RoundPerLine, result.RoundingPolicy)
		assert.Equal(t, 0, profiles.calls, "profile is not consulted when both values are given")
	})

	t.Run("missing values come from the active profile", func(t *testing.T) {
		profiles := &stubProfiles{profile: model.PackagingProfile{BufferPercent: decimal.Zero, UnitsPerCase: 30}}
		svc := newTestBatchService(nil, profiles)

		req := sampleRequest()
		req.BufferPercent = nil
		req.UnitsPerCase = nil

		result, err := svc.Preview(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 95, result.TotalUniqueCodes)
		assert.Equal(t, 30, result.UnitsPerCase)
		assert.Equal(t, 4, result.TotalMasterCodes)
	})

	t.Run("one explicit value overrides the profile", func(t *testing.T) {
		profiles := &stubProfiles{profile: model.PackagingProfile{BufferPercent: decimal.NewFromInt(50), UnitsPerCase: 30}}
		svc := newTestBatchService(nil, profiles)

		req := sampleRequest()
		req.BufferPercent = nil

		result, err := svc.Preview(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(result.BufferPercent))
		assert.Equal(t, 100, result.UnitsPerCase)
	})

	t.Run("per batch policy", func(t *testing.T) {
		svc := newTestBatchService(nil, nil, WithDefaultPolicy(model.RoundPerBatch))

		result, err := svc.Preview(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.Equal(t, model.RoundPerBatch, result.RoundingPolicy)
		assert.Equal(t, result.TotalUniqueCodes, result.EmittedCodes())
	})

	t.Run("invalid configuration", func(t *testing.T) {
		svc := newTestBatchService(nil, nil)
		req := sampleRequest()
		req.UnitsPerCase = intPtr(0)

		_, err := svc.Preview(context.Background(), req)

		assert.ErrorIs(t, err, tracecode.ErrInvalidConfiguration)
	})

	t.Run("cache serves repeated requests", func(t *testing.T) {
		svc := newTestBatchService(nil, nil, WithCache(16, time.Minute))
		defer svc.Stop()

		first, err := svc.Preview(context.Background(), sampleRequest())
		require.NoError(t, err)
		second, err := svc.Preview(context.Background(), sampleRequest())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		sc, ok := svc.cache.(*ShardedCache)
		require.True(t, ok)
		assert.Equal(t, int64(1), sc.Metrics().Hits)

		svc.InvalidateCache()
		assert.Equal(t, 0, sc.Metrics().Size)
	})

	t.Run("callers cannot mutate cached results", func(t *testing.T) {
		svc := newTestBatchService(nil, nil, WithCache(16, time.Minute))
		defer svc.Stop()

		first, err := svc.Preview(context.Background(), sampleRequest())
		require.NoError(t, err)
		want := first.Clone()

		first.IndividualCodes[0].Code = "tampered"
		first.MasterCodes[0].ExpectedUnitCount = -1

		second, err := svc.Preview(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, want, second)

		second.IndividualCodes[1].CaseNumber = 99
		third, err := svc.Preview(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, want, third)
	})
}

func TestBatchService_Generate(t *testing.T) {
	fixed := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       func() dto.BatchRequest
		setupMock func(*mocks.MockCodeStore)
		wantErr   error
	}{
		{
			name: "stores the generated batch",
			req:  sampleRequest,
			setupMock: func(m *mocks.MockCodeStore) {
				m.On("BatchExists", mock.Anything, "ORD-HM-2501-01").Return(false, nil)
				m.On("SaveBatch", mock.Anything, mock.MatchedBy(func(b *model.StoredBatch) bool {
					return b.ID != "" && b.CreatedBy == "planner" && b.CreatedAt.Equal(fixed) &&
						len(b.Result.IndividualCodes) == 105 && len(b.Result.MasterCodes) == 2
				})).Return(nil)
			},
		},
		{
			name: "rejects a batch without units",
			req: func() dto.BatchRequest {
				r := sampleRequest()
				r.Lines = []model.OrderLineSpec{{ProductCode: "A", VariantCode: "B", Quantity: 0}}
				return r
			},
			setupMock: func(*mocks.MockCodeStore) {},
			wantErr:   ErrEmptyBatch,
		},
		{
			name: "rejects an existing order",
			req:  sampleRequest,
			setupMock: func(m *mocks.MockCodeStore) {
				m.On("BatchExists", mock.Anything, "ORD-HM-2501-01").Return(true, nil)
			},
			wantErr: ErrBatchExists,
		},
		{
			name: "maps a concurrent duplicate insert",
			req:  sampleRequest,
			setupMock: func(m *mocks.MockCodeStore) {
				m.On("BatchExists", mock.Anything, "ORD-HM-2501-01").Return(false, nil)
				m.On("SaveBatch", mock.Anything, mock.Anything).Return(repository.ErrDuplicateBatch)
			},
			wantErr: ErrBatchExists,
		},
		{
			name: "generator rejection is not persisted",
			req: func() dto.BatchRequest {
				r := sampleRequest()
				r.Lines[0].ProductCode = "VAPE-001"
				return r
			},
			setupMock: func(m *mocks.MockCodeStore) {
				m.On("BatchExists", mock.Anything, "ORD-HM-2501-01").Return(false, nil)
			},
			wantErr: tracecode.ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockCodeStore)
			tt.setupMock(store)
			svc := newTestBatchService(store, nil, WithClock(func() time.Time { return fixed }))

			stored, err := svc.Generate(context.Background(), tt.req(), "planner")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, stored)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "ORD-HM-2501-01", stored.Result.OrderNumber)
			}
			store.AssertExpectations(t)
		})
	}

	t.Run("store errors are wrapped", func(t *testing.T) {
		store := new(mocks.MockCodeStore)
		boom := errors.New("connection reset")
		store.On("BatchExists", mock.Anything, mock.Anything).Return(false, boom)

		_, err := newTestBatchService(store, nil).Generate(context.Background(), sampleRequest(), "")

		assert.ErrorIs(t, err, boom)
	})

	t.Run("without a store", func(t *testing.T) {
		_, err := newTestBatchService(nil, nil).Generate(context.Background(), sampleRequest(), "")
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

func storedSample(t *testing.T) *model.StoredBatch {
	t.Helper()
	result, err := tracecode.GenerateBatch(model.BatchConfig{
		OrderNumber:   "ORD-HM-2501-01",
		BufferPercent: decimal.NewFromInt(10),
		UnitsPerCase:  100,
	}, sampleRequest().Lines)
	require.NoError(t, err)
	return &model.StoredBatch{ID: "id-1", Result: result}
}

func TestBatchService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := new(mocks.MockCodeStore)
		store.On("GetBatch", mock.Anything, "ORD-HM-2501-01").Return(storedSample(t), nil)

		got, err := newTestBatchService(store, nil).Get(context.Background(), "ORD-HM-2501-01")

		require.NoError(t, err)
		assert.Equal(t, "id-1", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(mocks.MockCodeStore)
		store.On("GetBatch", mock.Anything, "ORD-HM-2501-02").Return(nil, repository.ErrNotFound)

		_, err := newTestBatchService(store, nil).Get(context.Background(), "ORD-HM-2501-02")

		assert.ErrorIs(t, err, ErrBatchNotFound)
	})
}

func TestBatchService_Export(t *testing.T) {
	t.Run("writes an archive", func(t *testing.T) {
		store := new(mocks.MockCodeStore)
		store.On("GetBatch", mock.Anything, "ORD-HM-2501-01").Return(storedSample(t), nil)

		var buf bytes.Buffer
		err := newTestBatchService(store, nil).Export(context.Background(), "ORD-HM-2501-01", &buf)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
	})

	t.Run("unknown order", func(t *testing.T) {
		store := new(mocks.MockCodeStore)
		store.On("GetBatch", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

		var buf bytes.Buffer
		err := newTestBatchService(store, nil).Export(context.Background(), "ORD-HM-2501-09", &buf)

		assert.ErrorIs(t, err, ErrBatchNotFound)
		assert.Zero(t, buf.Len())
	})
}

func TestBatchService_Lookup(t *testing.T) {
	code := "PROD-VAPE001-MINT-ORD-HM-2501-01-00001"

	tests := []struct {
		name      string
		code      string
		setupMock func(*mocks.MockCodeStore)
		wantErr   error
	}{
		{
			name: "stored code",
			code: code,
			setupMock: func(m *mocks.MockCodeStore) {
				m.On("FindCode", mock.Anything, model.KindIndividual, code).
					Return(&model.CodeRecord{Code: code, Kind: model.KindIndividual, Status: model.StatusAtShop}, nil)
			},
		},
		{
			name:      "malformed code",
			code:      "not-a-code",
			setupMock: func(*mocks.MockCodeStore) {},
			wantErr:   ErrInvalidCode,
		},
		{
			name: "unknown code",
			code: "MASTER-ORD-HM-2501-01-CASE-009",
			setupMock: func(m *mocks.MockCodeStore) {
				m.On("FindCode", mock.Anything, model.KindMaster, "MASTER-ORD-HM-2501-01-CASE-009").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockCodeStore)
			tt.setupMock(store)

			rec, err := newTestBatchService(store, nil).Lookup(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.StatusAtShop, rec.Status)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestBatchService_ValidateCode(t *testing.T) {
	svc := newTestBatchService(nil, nil)

	parsed, ok := svc.ValidateCode("MASTER-ORD-HM-2501-01-CASE-002")
	require.True(t, ok)
	assert.Equal(t, model.KindMaster, parsed.Kind)
	assert.Equal(t, 2, parsed.CaseNumber)

	_, ok = svc.ValidateCode("MASTER-ORD-HM-2501-01-CASE-2")
	assert.False(t, ok)
}
