//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fallbackProfile() model.PackagingProfile {
	return model.PackagingProfile{BufferPercent: decimal.NewFromInt(5), UnitsPerCase: 50, Active: true}
}

func TestPackagingProfileService_Active(t *testing.T) {
	stored := &model.PackagingProfile{ID: "p2", BufferPercent: decimal.RequireFromString("2.5"), UnitsPerCase: 24, Active: true, Version: 2}

	tests := []struct {
		name      string
		setupMock func(*mocks.MockPackagingProfileRepository)
		wantUnits int
		wantID    string
	}{
		{
			name: "stored profile",
			setupMock: func(m *mocks.MockPackagingProfileRepository) {
				m.On("GetActive", mock.Anything).Return(stored, nil)
			},
			wantUnits: 24,
			wantID:    "p2",
		},
		{
			name: "no stored profile uses fallback",
			setupMock: func(m *mocks.MockPackagingProfileRepository) {
				m.On("GetActive", mock.Anything).Return(nil, nil)
			},
			wantUnits: 50,
		},
		{
			name: "store error uses fallback",
			setupMock: func(m *mocks.MockPackagingProfileRepository) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("timeout"))
			},
			wantUnits: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockPackagingProfileRepository)
			tt.setupMock(repo)

			got := NewPackagingProfileService(repo, fallbackProfile()).Active(context.Background())

			assert.Equal(t, tt.wantUnits, got.UnitsPerCase)
			assert.Equal(t, tt.wantID, got.ID)
			repo.AssertExpectations(t)
		})
	}
}

func TestPackagingProfileService_WithoutRepository(t *testing.T) {
	svc := NewPackagingProfileService(nil, model.PackagingProfile{})
	ctx := context.Background()

	active := svc.Active(ctx)
	assert.Equal(t, 100, active.UnitsPerCase, "zero fallback is replaced by the built-in default")

	_, err := svc.Update(ctx, decimal.NewFromInt(5), 10, "ops")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.History(ctx, 10)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestPackagingProfileService_Update(t *testing.T) {
	repo := new(mocks.MockPackagingProfileRepository)
	buffer := decimal.RequireFromString("7.5")
	repo.On("Create", mock.Anything, buffer, 12, "ops").
		Return(&model.PackagingProfile{BufferPercent: buffer, UnitsPerCase: 12, Version: 3, Active: true}, nil)

	got, err := NewPackagingProfileService(repo, fallbackProfile()).Update(context.Background(), buffer, 12, "ops")

	require.NoError(t, err)
	assert.Equal(t, 3, got.Version)
	repo.AssertExpectations(t)
}

func TestPackagingProfileService_History(t *testing.T) {
	repo := new(mocks.MockPackagingProfileRepository)
	repo.On("List", mock.Anything, 5).Return([]model.PackagingProfile{{Version: 2}, {Version: 1}}, nil)

	got, err := NewPackagingProfileService(repo, fallbackProfile()).History(context.Background(), 5)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}
