// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPackagingProfileRepository struct {
	mock.Mock
}

func (m *MockPackagingProfileRepository) GetActive(ctx context.Context) (*model.PackagingProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackagingProfile), args.Error(1)
}

func (m *MockPackagingProfileRepository) Create(ctx context.Context, bufferPercent decimal.Decimal, unitsPerCase int, createdBy string) (*model.PackagingProfile, error) {
	args := m.Called(ctx, bufferPercent, unitsPerCase, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackagingProfile), args.Error(1)
}

func (m *MockPackagingProfileRepository) List(ctx context.Context, limit int) ([]model.PackagingProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackagingProfile), args.Error(1)
}
