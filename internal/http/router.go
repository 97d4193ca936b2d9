// Package http wires the gin routes of the trace service.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/metrics"
	"github.com/guttosm/trace-service/internal/middleware"
	"github.com/guttosm/trace-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	TokenVerifier     *middleware.TokenVerifier
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultTimeout,
		EnableIdempotency: true,
	}
}

// Handlers are the route handlers mounted by NewRouter.
type Handlers struct {
	Batches  *BatchHandler
	Codes    *CodeHandler
	Profiles *PackagingProfileHandler
	Health   *HealthHandler
}

// Router is the gin engine plus the background resources its middleware owns.
type Router struct {
	*gin.Engine
	stops []func()
}

// Stop releases the rate limiter and idempotency cache goroutines.
func (r *Router) Stop() {
	for _, stop := range r.stops {
		stop()
	}
}

// NewRouter creates the gin router for the trace service.
func NewRouter(h Handlers, cfg RouterConfig) *Router {
	r := &Router{Engine: gin.New()}

	r.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if h.Health == nil {
		h.Health = NewHealthHandler()
	}
	h.Health.Register(r.Engine)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerSwagger(r.Engine, cfg)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.stops = append(r.stops, limiter.Stop)
	}

	// Printed labels point here, so scans need no credentials.
	track := r.Group("/track")
	if limiter != nil {
		track.Use(limiter.RateLimit())
	}
	if h.Codes != nil {
		track.GET("/:kind/:code", h.Codes.Track)
	}

	api := r.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	if len(cfg.APIKeys) > 0 || cfg.TokenVerifier != nil {
		api.Use(middleware.Authenticate(cfg.APIKeys, cfg.TokenVerifier))
	}
	if limiter != nil {
		api.Use(limiter.RateLimit())
	}
	if cfg.EnableIdempotency {
		idem := middleware.DefaultIdempotencyConfig()
		r.stops = append(r.stops, idem.Stop)
		api.Use(middleware.Idempotency(idem))
	}

	var groups []RouteGroup
	if h.Batches != nil && h.Codes != nil {
		groups = append(groups, NewBatchRoutes(h.Batches, h.Codes))
	}
	if h.Profiles != nil {
		groups = append(groups, NewPackagingProfileRoutes(h.Profiles))
	}
	for _, g := range groups {
		g.RegisterRoutes(api)
	}

	return r
}

// registerSwagger serves the API document, behind basic auth when credentials are set.
func registerSwagger(router *gin.Engine, cfg RouterConfig) {
	handler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		router.Group("/swagger", gin.BasicAuth(gin.Accounts{cfg.SwaggerUser: cfg.SwaggerPass})).
			GET("/*any", handler)
		return
	}
	router.GET("/swagger/*any", handler)
}
