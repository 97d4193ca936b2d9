// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"

	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) Preview(ctx context.Context, req dto.BatchRequest) (model.QRBatchResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.QRBatchResult), args.Error(1)
}

func (m *MockBatchService) Generate(ctx context.Context, req dto.BatchRequest, actor string) (*model.StoredBatch, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredBatch), args.Error(1)
}

func (m *MockBatchService) Get(ctx context.Context, orderNumber string) (*model.StoredBatch, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredBatch), args.Error(1)
}

// Export writes the bytes given as the first return value, if any.
func (m *MockBatchService) Export(ctx context.Context, orderNumber string, w io.Writer) error {
	args := m.Called(ctx, orderNumber, w)
	if b, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(b)
	}
	return args.Error(1)
}

func (m *MockBatchService) Lookup(ctx context.Context, code string) (*model.CodeRecord, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CodeRecord), args.Error(1)
}

func (m *MockBatchService) ValidateCode(code string) (model.ParsedCode, bool) {
	args := m.Called(code)
	return args.Get(0).(model.ParsedCode), args.Bool(1)
}

func (m *MockBatchService) InvalidateCache() {
	m.Called()
}
