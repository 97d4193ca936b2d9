// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPackagingProfileService struct {
	mock.Mock
}

func (m *MockPackagingProfileService) Active(ctx context.Context) model.PackagingProfile {
	args := m.Called(ctx)
	return args.Get(0).(model.PackagingProfile)
}

func (m *MockPackagingProfileService) Update(ctx context.Context, bufferPercent decimal.Decimal, unitsPerCase int, createdBy string) (*model.PackagingProfile, error) {
	args := m.Called(ctx, bufferPercent, unitsPerCase, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackagingProfile), args.Error(1)
}

func (m *MockPackagingProfileService) History(ctx context.Context, limit int) ([]model.PackagingProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackagingProfile), args.Error(1)
}
