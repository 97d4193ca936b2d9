package app

import (
	"fmt"

	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/logger"
	"github.com/guttosm/trace-service/internal/middleware"
)

// AuthComponents holds the credentials the /api group accepts.
type AuthComponents struct {
	APIKeys       map[string]bool
	TokenVerifier *middleware.TokenVerifier
}

// InitializeAuth builds the API key set and bearer token verifier.
// It returns nil when authentication is disabled.
func InitializeAuth(cfg config.AuthConfig) (*AuthComponents, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	auth := &AuthComponents{APIKeys: cfg.APIKeys}
	if cfg.JWTSecretKey != "" {
		verifier, err := middleware.NewTokenVerifier(cfg.JWTSecretKey, cfg.JWTIssuer)
		if err != nil {
			return nil, fmt.Errorf("token verifier: %w", err)
		}
		auth.TokenVerifier = verifier
	}

	if len(auth.APIKeys) == 0 && auth.TokenVerifier == nil {
		return nil, fmt.Errorf("authentication enabled but neither API_KEYS nor JWT_SECRET_KEY is set")
	}

	log := logger.Logger()
	log.Info().
		Int("api_keys", len(auth.APIKeys)).
		Bool("bearer_tokens", auth.TokenVerifier != nil).
		Msg("Authentication enabled")
	return auth, nil
}
