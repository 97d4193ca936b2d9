package app

import (
	"fmt"

	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/export"
	"github.com/guttosm/trace-service/internal/middleware"
	"github.com/guttosm/trace-service/internal/repository"
	"github.com/guttosm/trace-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Batches  service.BatchService
	Profiles service.PackagingProfileService
	Logging  service.LoggingService
}

// InitializeServices builds the services on top of whichever stores are available.
// When MongoDB is available, audit entries are written through the async logger.
func InitializeServices(cfg config.Config, db *DatabaseComponents, pg *PostgresComponents) (*ServiceComponents, error) {
	policy := model.RoundingPolicy(cfg.Batch.RoundingPolicy)
	if !policy.Valid() {
		return nil, fmt.Errorf("invalid ROUNDING_POLICY %q: want %q or %q",
			cfg.Batch.RoundingPolicy, model.RoundPerLine, model.RoundPerBatch)
	}

	fallback := model.PackagingProfile{
		BufferPercent: cfg.Batch.DefaultBufferPercent,
		UnitsPerCase:  cfg.Batch.DefaultUnitsPerCase,
		Active:        true,
	}

	var profileRepo repository.PackagingProfileRepositoryInterface
	var loggingService service.LoggingService
	if db != nil {
		profileRepo = db.ProfileRepo
		loggingService = service.NewLoggingService(db.LogsRepo)
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	var store repository.CodeStore
	if pg != nil {
		store = pg.Store
	}

	profiles := service.NewPackagingProfileService(profileRepo, fallback)
	batches := service.NewBatchService(
		store,
		profiles,
		export.New(cfg.Batch.TrackingBaseURL),
		service.WithCache(cfg.Cache.Size, cfg.Cache.TTL),
		service.WithDefaultPolicy(policy),
	)

	return &ServiceComponents{
		Batches:  batches,
		Profiles: profiles,
		Logging:  loggingService,
	}, nil
}
