package app

import (
	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/http"
)

// RouterComponents holds the handlers and router configuration.
type RouterComponents struct {
	Handlers http.Handlers
	Config   http.RouterConfig
}

// InitializeRouter builds the HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	pg *PostgresComponents,
	auth *AuthComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	if pg != nil {
		healthHandler.RegisterChecker("postgres", pg.Store)
	}
	if db != nil {
		healthHandler.RegisterChecker("mongodb", db.Mongo)
		healthHandler.RegisterCircuitBreaker(db.ProfilesCircuitBreaker)
		healthHandler.RegisterCircuitBreaker(db.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    services.Logging,
	}
	if auth != nil {
		routerCfg.APIKeys = auth.APIKeys
		routerCfg.TokenVerifier = auth.TokenVerifier
	}

	return &RouterComponents{
		Handlers: http.Handlers{
			Batches:  http.NewBatchHandler(services.Batches, services.Logging),
			Codes:    http.NewCodeHandler(services.Batches, services.Logging),
			Profiles: http.NewPackagingProfileHandler(services.Profiles, services.Batches, services.Logging),
			Health:   healthHandler,
		},
		Config: routerCfg,
	}
}
