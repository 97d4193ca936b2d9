package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyAuth(t *testing.T) {
	validKeys := map[string]bool{"valid-key-123": true, "another-valid-key": true}

	tests := []struct {
		name           string
		validKeys      map[string]bool
		setupRequest   func(*http.Request)
		expectedStatus int
		expectedActor  string
	}{
		{
			name:           "allows request with valid API key in header",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "valid-key-123") },
			expectedStatus: http.StatusOK,
			expectedActor:  "api-key:vali****",
		},
		{
			name:      "allows request with valid API key in query",
			validKeys: validKeys,
			setupRequest: func(req *http.Request) {
				q := req.URL.Query()
				q.Set(APIKeyQuery, "another-valid-key")
				req.URL.RawQuery = q.Encode()
			},
			expectedStatus: http.StatusOK,
			expectedActor:  "api-key:anot****",
		},
		{
			name:           "rejects missing API key",
			validKeys:      validKeys,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rejects unknown API key",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "nope") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty key set disables the check",
			validKeys:      map[string]bool{},
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(APIKeyAuth(tt.validKeys))
			router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, GetActor(c)) })

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedActor, w.Body.String())
			} else {
				assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, w).Error)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	verifier, err := NewTokenVerifier(testSecret, "")
	require.NoError(t, err)
	token := signToken(t, testSecret, "ops@example.com", time.Now().Add(time.Hour))
	keys := map[string]bool{"valid-key-123": true}

	tests := []struct {
		name           string
		keys           map[string]bool
		verifier       *TokenVerifier
		setupRequest   func(*http.Request)
		expectedStatus int
		expectedActor  string
	}{
		{
			name:     "bearer token wins over API key",
			keys:     keys,
			verifier: verifier,
			setupRequest: func(req *http.Request) {
				req.Header.Set(AuthorizationHeader, "Bearer "+token)
				req.Header.Set(APIKeyHeader, "valid-key-123")
			},
			expectedStatus: http.StatusOK,
			expectedActor:  "ops@example.com",
		},
		{
			name:           "API key without bearer token",
			keys:           keys,
			verifier:       verifier,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "valid-key-123") },
			expectedStatus: http.StatusOK,
			expectedActor:  "api-key:vali****",
		},
		{
			name:           "bad bearer token is not retried as API key",
			keys:           keys,
			verifier:       verifier,
			setupRequest:   func(req *http.Request) { req.Header.Set(AuthorizationHeader, "Bearer garbage") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "verifier only requires a token",
			verifier:       verifier,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "nothing configured lets requests through",
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Authenticate(tt.keys, tt.verifier))
			router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, GetActor(c)) })

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedActor, w.Body.String())
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", maskKey("abc"))
	assert.Equal(t, "abcd****", maskKey("abcdefgh"))
}
