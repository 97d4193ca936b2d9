package app

import (
	"context"

	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/circuitbreaker"
	"github.com/guttosm/trace-service/internal/logger"
	"github.com/guttosm/trace-service/internal/metrics"
	"github.com/guttosm/trace-service/internal/repository"
	"gorm.io/gorm"
)

// DatabaseComponents holds the MongoDB-backed repositories.
type DatabaseComponents struct {
	Mongo                  *repository.MongoDB
	ProfileRepo            repository.PackagingProfileRepositoryInterface
	LogsRepo               repository.LogsRepositoryInterface
	ProfilesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// PostgresComponents holds the code store.
type PostgresComponents struct {
	DB    *gorm.DB
	Store *repository.PostgresCodeStore
}

// InitializeDatabase connects to MongoDB and builds its repositories.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	log := logger.Logger()

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without profiles and audit logs")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.LogsTTL > 0 {
		if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
	}

	profilesCB := newCircuitBreaker("mongodb-profiles", cfg)
	logsCB := newCircuitBreaker("mongodb-logs", cfg)

	return &DatabaseComponents{
		Mongo:                  db,
		ProfileRepo:            repository.NewPackagingProfileRepositoryWithCircuitBreaker(repository.NewPackagingProfileRepository(db), profilesCB),
		LogsRepo:               repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB),
		ProfilesCircuitBreaker: profilesCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// InitializePostgres opens the code store. Returns nil if Postgres is disabled
// or unreachable; batches can then be previewed but not stored.
func InitializePostgres(cfg config.PostgresConfig, chunkSize int) *PostgresComponents {
	if !cfg.Enabled {
		return nil
	}

	log := logger.Logger()

	db, err := repository.NewPostgres(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Postgres - continuing without the code store")
		return nil
	}
	log.Info().Str("host", cfg.Host).Str("database", cfg.DBName).Msg("Connected to Postgres")

	return &PostgresComponents{
		DB:    db,
		Store: repository.NewPostgresCodeStore(db, chunkSize),
	}
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}
