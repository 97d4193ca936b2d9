package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth validates the X-API-Key header, falling back to the api_key query
// parameter. An empty key set disables the check.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}
		if checkAPIKey(c, validKeys) {
			c.Next()
		}
	}
}

// Authenticate accepts either a bearer token verified by verifier or an API
// key from validKeys. A nil verifier and an empty key set disable the check.
func Authenticate(validKeys map[string]bool, verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier != nil && strings.HasPrefix(c.GetHeader(AuthorizationHeader), bearerPrefix) {
			if checkBearer(c, verifier) {
				c.Next()
			}
			return
		}
		if len(validKeys) > 0 {
			if checkAPIKey(c, validKeys) {
				c.Next()
			}
			return
		}
		if verifier != nil {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}
		c.Next()
	}
}

// checkAPIKey aborts the request and returns false when no valid key is present.
func checkAPIKey(c *gin.Context, validKeys map[string]bool) bool {
	key := c.GetHeader(APIKeyHeader)
	if key == "" {
		key = c.Query(APIKeyQuery)
	}

	switch {
	case key == "":
		abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
		return false
	case !validKeys[key]:
		abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
		return false
	}

	setActor(c, "api-key:"+maskKey(key))
	return true
}

// maskKey keeps the first four characters so audit entries can tell keys apart.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
