//go:build integration

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/export"
	"github.com/guttosm/trace-service/internal/repository"
	"github.com/guttosm/trace-service/internal/service"
	"github.com/guttosm/trace-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func newIntegrationRouter(t *testing.T) *Router {
	t.Helper()

	db, err := repository.OpenPostgres(testutil.PostgresDSN(), config.PostgresConfig{LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.ClosePostgres(db) })
	require.NoError(t, db.Exec("TRUNCATE qr_batches, qr_master_codes, qr_individual_codes").Error)

	mongoDB, err := repository.NewMongoDB(testutil.MongoURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongoDB.Close(context.Background()) })

	store := repository.NewPostgresCodeStore(db, 50)
	profiles := service.NewPackagingProfileService(repository.NewPackagingProfileRepository(mongoDB), model.DefaultPackagingProfile())
	batches := service.NewBatchService(store, profiles, export.New("https://scan.example.com"))
	logging := service.NewLoggingService(repository.NewLogsRepository(mongoDB))

	health := NewHealthHandler()
	health.RegisterChecker("postgres", store)

	cfg := DefaultRouterConfig()
	cfg.LoggingService = logging
	r := NewRouter(Handlers{
		Batches:  NewBatchHandler(batches, logging),
		Codes:    NewCodeHandler(batches, logging),
		Profiles: NewPackagingProfileHandler(profiles, batches, logging),
		Health:   health,
	}, cfg)
	t.Cleanup(r.Stop)
	return r
}

func TestRouter_Integration_GenerateAndTrack(t *testing.T) {
	r := newIntegrationRouter(t)

	w := performRequest(r, http.MethodGet, "/readyz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodPost, "/api/batches", batchBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var stored struct {
		ID              string                 `json:"id"`
		MasterCodes     []model.MasterCode     `json:"master_codes"`
		IndividualCodes []model.IndividualCode `json:"individual_codes"`
	}
	decodeData(t, w, &stored)
	require.NotEmpty(t, stored.ID)
	require.Len(t, stored.MasterCodes, 2)
	require.Len(t, stored.IndividualCodes, 105)

	t.Run("duplicate order conflicts", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/batches", batchBody(), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("stored batch loads", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/api/batches/"+testOrder, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("individual code tracks", func(t *testing.T) {
		code := stored.IndividualCodes[104]
		w := performRequest(r, http.MethodGet, "/track/product/"+code.Code, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var record model.CodeRecord
		decodeData(t, w, &record)
		assert.Equal(t, testOrder, record.OrderNumber)
		assert.Equal(t, 2, record.CaseNumber)
	})

	t.Run("master code tracks", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/track/master/"+stored.MasterCodes[0].Code, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("export downloads", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/api/batches/"+testOrder+"/export", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	})
}
