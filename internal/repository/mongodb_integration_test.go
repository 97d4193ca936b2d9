//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupMongo(t)

	t.Run("collections are wired", func(t *testing.T) {
		assert.NotNil(t, db.PackagingProfiles)
		assert.NotNil(t, db.Logs)
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("logs TTL can be set repeatedly", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, 7*24*time.Hour))
	})
}

func TestNewMongoDB_InvalidURI(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 500 * time.Millisecond

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "nowhere", cfg)
	assert.Error(t, err)
}
