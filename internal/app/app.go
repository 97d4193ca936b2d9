// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/http"
	"github.com/guttosm/trace-service/internal/logger"
	"github.com/guttosm/trace-service/internal/middleware"
	"github.com/guttosm/trace-service/internal/repository"
)

// App is the wired service: its router, its server and the connections they own.
type App struct {
	Router   *http.Router
	Server   *Server
	Services *ServiceComponents

	database *DatabaseComponents
	postgres *PostgresComponents
}

// InitializeApp creates and wires all application dependencies.
// Storage backends that are disabled or unreachable are skipped, so the
// service still previews and validates codes without them.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	auth, err := InitializeAuth(cfg.Auth)
	if err != nil {
		return nil, err
	}

	dbComponents := InitializeDatabase(cfg.Database)
	pgComponents := InitializePostgres(cfg.Postgres, cfg.Batch.InsertChunkSize)

	serviceComponents, err := InitializeServices(cfg, dbComponents, pgComponents)
	if err != nil {
		closeStorage(dbComponents, pgComponents)
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, pgComponents, auth, cfg)
	router := http.NewRouter(routerComponents.Handlers, routerComponents.Config)

	return &App{
		Router:   router,
		Server:   NewServer(router, cfg.Server.Port),
		Services: serviceComponents,
		database: dbComponents,
		postgres: pgComponents,
	}, nil
}

// Run serves until a shutdown signal arrives, then releases every resource.
func (a *App) Run() error {
	defer a.Close()
	return a.Server.Run()
}

// Close stops background workers and closes the storage connections.
func (a *App) Close() {
	a.Router.Stop()
	middleware.StopAsyncLogger()
	closeStorage(a.database, a.postgres)
}

func closeStorage(db *DatabaseComponents, pg *PostgresComponents) {
	log := logger.Logger()

	if pg != nil {
		if err := repository.ClosePostgres(pg.DB); err != nil {
			log.Warn().Err(err).Msg("Failed to close Postgres")
		}
	}
	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect MongoDB")
		}
	}
}
