package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/mocks"
	"github.com/guttosm/trace-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileRouter(profiles service.PackagingProfileService, batches service.BatchService) *gin.Engine {
	h := NewPackagingProfileHandler(profiles, batches, nil)
	r := newTestEngine("")
	r.GET("/api/packaging-profile", h.GetActive)
	r.PUT("/api/packaging-profile", h.Update)
	r.GET("/api/packaging-profile/history", h.History)
	return r
}

func TestPackagingProfileHandler_GetActive(t *testing.T) {
	profiles := new(mocks.MockPackagingProfileService)
	profiles.On("Active", mock.Anything).Return(model.DefaultPackagingProfile())

	w := performRequest(newProfileRouter(profiles, nil), http.MethodGet, "/api/packaging-profile", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got model.PackagingProfile
	decodeData(t, w, &got)
	assert.Equal(t, 100, got.UnitsPerCase)
	assert.True(t, got.BufferPercent.Equal(decimal.NewFromInt(10)))
}

func TestPackagingProfileHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockPackagingProfileService, *mocks.MockBatchService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "stores a new version and drops cached previews",
			body: map[string]interface{}{"buffer_percent": "12.5", "units_per_case": 50, "created_by": "ops"},
			setupMocks: func(p *mocks.MockPackagingProfileService, b *mocks.MockBatchService) {
				p.On("Update", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.RequireFromString("12.5"))
				}), 50, "ops").
					Return(&model.PackagingProfile{BufferPercent: decimal.RequireFromString("12.5"), UnitsPerCase: 50, Version: 2, Active: true}, nil)
				b.On("InvalidateCache").Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "units per case must be positive",
			body:           map[string]interface{}{"buffer_percent": "10", "units_per_case": 0},
			setupMocks:     func(*mocks.MockPackagingProfileService, *mocks.MockBatchService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  dto.ErrCodeInvalidRequest,
		},
		{
			name:           "negative buffer",
			body:           map[string]interface{}{"buffer_percent": "-1", "units_per_case": 10},
			setupMocks:     func(*mocks.MockPackagingProfileService, *mocks.MockBatchService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  dto.ErrCodeInvalidRequest,
		},
		{
			name: "profile store not configured",
			body: map[string]interface{}{"buffer_percent": "10", "units_per_case": 10},
			setupMocks: func(p *mocks.MockPackagingProfileService, _ *mocks.MockBatchService) {
				p.On("Update", mock.Anything, mock.Anything, 10, "").Return(nil, service.ErrRepositoryNotConfigured)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  dto.ErrCodeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(mocks.MockPackagingProfileService)
			batches := new(mocks.MockBatchService)
			tt.setupMocks(profiles, batches)

			w := performRequest(newProfileRouter(profiles, batches), http.MethodPut, "/api/packaging-profile", tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
				batches.AssertNotCalled(t, "InvalidateCache")
				return
			}
			var got model.PackagingProfile
			decodeData(t, w, &got)
			assert.Equal(t, 2, got.Version)
			profiles.AssertExpectations(t)
			batches.AssertExpectations(t)
		})
	}
}

func TestPackagingProfileHandler_History(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		result    []model.PackagingProfile
		err       error
		status    int
	}{
		{name: "default limit", wantLimit: defaultHistoryLimit, result: []model.PackagingProfile{{Version: 2}, {Version: 1}}, status: http.StatusOK},
		{name: "explicit limit", query: "?limit=5", wantLimit: 5, result: []model.PackagingProfile{{Version: 1}}, status: http.StatusOK},
		{name: "invalid limit falls back", query: "?limit=abc", wantLimit: defaultHistoryLimit, status: http.StatusOK},
		{name: "store failure", wantLimit: defaultHistoryLimit, err: errors.New("down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(mocks.MockPackagingProfileService)
			if tt.err != nil {
				profiles.On("History", mock.Anything, tt.wantLimit).Return(nil, tt.err)
			} else {
				profiles.On("History", mock.Anything, tt.wantLimit).Return(tt.result, nil)
			}

			w := performRequest(newProfileRouter(profiles, nil), http.MethodGet, "/api/packaging-profile/history"+tt.query, nil, nil)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				var got []model.PackagingProfile
				decodeData(t, w, &got)
				assert.Len(t, got, len(tt.result))
			}
			profiles.AssertExpectations(t)
		})
	}
}
