package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/mocks"
	"github.com/guttosm/trace-service/internal/service"
	"github.com/guttosm/trace-service/internal/tracecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	individualCode = "PROD-VAPE001-MINT-ORD-HM-2501-01-00001"
	masterCode     = "MASTER-ORD-HM-2501-01-CASE-001"
)

func newCodeRouter(batches service.BatchService) *gin.Engine {
	h := NewCodeHandler(batches, nil)
	r := newTestEngine("")
	r.POST("/api/codes/validate", h.ValidateCode)
	r.GET("/track/:kind/:code", h.Track)
	return r
}

// parsingBatches answers ValidateCode with the real parser.
func parsingBatches() *mocks.MockBatchService {
	m := new(mocks.MockBatchService)
	for _, code := range []string{individualCode, masterCode, "garbage"} {
		parsed, ok := tracecode.ParseCode(code)
		m.On("ValidateCode", code).Return(parsed, ok).Maybe()
	}
	return m
}

func TestCodeHandler_ValidateCode(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		wantValid      bool
		wantKind       model.CodeKind
	}{
		{name: "individual code", body: dto.ValidateCodeRequest{Code: individualCode}, expectedStatus: http.StatusOK, wantValid: true, wantKind: model.KindIndividual},
		{name: "master code", body: dto.ValidateCodeRequest{Code: masterCode}, expectedStatus: http.StatusOK, wantValid: true, wantKind: model.KindMaster},
		{name: "malformed code is not an error", body: dto.ValidateCodeRequest{Code: "garbage"}, expectedStatus: http.StatusOK},
		{name: "missing code", body: map[string]string{}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(newCodeRouter(parsingBatches()), http.MethodPost, "/api/codes/validate", tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp dto.ValidateCodeResponse
			decodeData(t, w, &resp)
			assert.Equal(t, tt.wantValid, resp.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantKind, resp.Parsed.Kind)
				assert.Equal(t, "ORD-HM-2501-01", resp.Parsed.OrderNumber)
			} else {
				assert.Nil(t, resp.Parsed)
			}
		})
	}
}

func TestCodeHandler_Track(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockBatchService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "individual code",
			path: "/track/product/" + individualCode,
			setupMocks: func(m *mocks.MockBatchService) {
				m.On("Lookup", mock.Anything, individualCode).Return(&model.CodeRecord{
					Code: individualCode, Kind: model.KindIndividual, OrderNumber: "ORD-HM-2501-01",
					SequenceNumber: 1, CaseNumber: 1, Status: model.StatusGenerated,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "master code",
			path: "/track/master/" + masterCode,
			setupMocks: func(m *mocks.MockBatchService) {
				m.On("Lookup", mock.Anything, masterCode).Return(&model.CodeRecord{
					Code: masterCode, Kind: model.KindMaster, OrderNumber: "ORD-HM-2501-01",
					CaseNumber: 1, ExpectedUnitCount: 100, Status: model.StatusInWarehouse,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "kind segment must match the code",
			path:           "/track/master/" + individualCode,
			setupMocks:     func(*mocks.MockBatchService) {},
			expectedStatus: http.StatusNotFound,
			expectedError:  dto.ErrCodeNotFound,
		},
		{
			name:           "unknown kind segment",
			path:           "/track/pallet/" + masterCode,
			setupMocks:     func(*mocks.MockBatchService) {},
			expectedStatus: http.StatusNotFound,
			expectedError:  dto.ErrCodeNotFound,
		},
		{
			name: "malformed code",
			path: "/track/product/garbage",
			setupMocks: func(m *mocks.MockBatchService) {
				m.On("Lookup", mock.Anything, "garbage").Return(nil, service.ErrInvalidCode)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  dto.ErrCodeInvalidRequest,
		},
		{
			name: "well formed but never generated",
			path: "/track/product/" + individualCode,
			setupMocks: func(m *mocks.MockBatchService) {
				m.On("Lookup", mock.Anything, individualCode).Return(nil, service.ErrCodeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  dto.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := new(mocks.MockBatchService)
			tt.setupMocks(batches)

			w := performRequest(newCodeRouter(batches), http.MethodGet, tt.path, nil, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			batches.AssertExpectations(t)
			batches.AssertNotCalled(t, "ValidateCode", mock.Anything)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
				return
			}
			var record model.CodeRecord
			decodeData(t, w, &record)
			assert.Equal(t, "ORD-HM-2501-01", record.OrderNumber)
			assert.NotEmpty(t, record.Status)
		})
	}
}
