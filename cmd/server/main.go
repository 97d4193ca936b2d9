// Package main is the entry point for the trace service.
//
// @title           Trace Service API
// @version         1.0.0
// @description     Generates serialized traceability codes for production orders and answers scan lookups.
//
//	Each order yields one case-level master code per case and one unit-level code per unit,
//	including the overproduction buffer.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/trace-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key. Required on /api when authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" issued by the auth service.
//
// @tag.name        Batches
// @tag.description Batch preview, generation and export
//
// @tag.name        Codes
// @tag.description Code validation
//
// @tag.name        Tracking
// @tag.description Public scan lookups
//
// @tag.name        Packaging Profile
// @tag.description Packaging defaults
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/trace-service/docs"

	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	a, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := a.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
