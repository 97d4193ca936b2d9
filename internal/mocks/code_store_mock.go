// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCodeStore struct {
	mock.Mock
}

func (m *MockCodeStore) SaveBatch(ctx context.Context, batch *model.StoredBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockCodeStore) BatchExists(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockCodeStore) GetBatch(ctx context.Context, orderNumber string) (*model.StoredBatch, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredBatch), args.Error(1)
}

func (m *MockCodeStore) FindCode(ctx context.Context, kind model.CodeKind, code string) (*model.CodeRecord, error) {
	args := m.Called(ctx, kind, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CodeRecord), args.Error(1)
}

func (m *MockCodeStore) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
