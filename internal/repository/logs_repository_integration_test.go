//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupMongo(t)
	require.NoError(t, db.SetLogsTTL(ctx, 24*time.Hour))
	repo := NewLogsRepository(db)

	t.Run("create fills id and timestamp", func(t *testing.T) {
		entry := NewLogEntryDocument(&model.LogEntry{
			Timestamp:   time.Now().UTC().Add(-time.Minute),
			Level:       "info",
			Message:     "batch generated",
			RequestID:   "req-1",
			Action:      model.ActionGenerateBatch,
			OrderNumber: "ORD-HM-2501-01",
			Fields:      map[string]interface{}{"total_unique_codes": 105},
		})

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())

		bare := &LogEntryDocument{Level: "debug", Message: "bare"}
		require.NoError(t, repo.Create(ctx, bare))
		assert.False(t, bare.Timestamp.IsZero())
	})

	t.Run("create many", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "info", Message: "request", RequestID: "req-2", Action: model.ActionHTTPRequest},
			{Level: "error", Message: "request", RequestID: "req-3", Action: model.ActionHTTPRequest},
			{Level: "info", Message: "exported", Action: model.ActionExportBatch, OrderNumber: "ORD-HM-2501-01"},
		}
		require.NoError(t, repo.CreateMany(ctx, entries))
		require.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by order number", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{OrderNumber: "ORD-HM-2501-01"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, model.ActionExportBatch, entries[0].Action, "newest first")
		assert.Equal(t, "ORD-HM-2501-01", entries[1].ToModel().OrderNumber)
	})

	t.Run("query with limit and level", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{Action: model.ActionHTTPRequest, Level: "error", Limit: 5})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-3", entries[0].RequestID)
	})

	t.Run("count with time range", func(t *testing.T) {
		start := time.Now().Add(-time.Hour)
		end := time.Now().Add(time.Hour)
		count, err := repo.Count(ctx, model.LogQueryOptions{StartTime: &start, EndTime: &end})
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}
