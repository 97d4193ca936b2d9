package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-entropy"

func signToken(t *testing.T, secret, email string, expires time.Time) string {
	t.Helper()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "auth",
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestNewTokenVerifier_NoSecret(t *testing.T) {
	v, err := NewTokenVerifier("", "")
	assert.ErrorIs(t, err, ErrNoSecret)
	assert.Nil(t, v)
}

func TestTokenVerifier_Verify(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		token     func(t *testing.T) string
		wantErr   bool
		wantActor string
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, "ops@example.com", time.Now().Add(time.Hour))
			},
			wantActor: "ops@example.com",
		},
		{
			name:      "subject is the actor without email",
			token:     func(t *testing.T) string { return signToken(t, testSecret, "", time.Now().Add(time.Hour)) },
			wantActor: "user-1",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, "ops@example.com", time.Now().Add(-time.Hour))
			},
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, "other-secret", "ops@example.com", time.Now().Add(time.Hour))
			},
			wantErr: true,
		},
		{
			name:   "issuer mismatch",
			issuer: "someone-else",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, "ops@example.com", time.Now().Add(time.Hour))
			},
			wantErr: true,
		},
		{
			name: "missing expiration",
			token: func(t *testing.T) string {
				s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "ops@example.com"}).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return s
			},
			wantErr: true,
		},
		{
			name: "unexpected signing method",
			token: func(t *testing.T) string {
				claims := Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
				s, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return s
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewTokenVerifier(testSecret, tt.issuer)
			require.NoError(t, err)

			claims, err := v.Verify(tt.token(t))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantActor, claims.Actor())
		})
	}
}

func TestJWTAuth(t *testing.T) {
	verifier, err := NewTokenVerifier(testSecret, "auth")
	require.NoError(t, err)
	valid := signToken(t, testSecret, "ops@example.com", time.Now().Add(time.Hour))

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + valid, expectedStatus: http.StatusOK},
		{name: "missing authorization header", expectedStatus: http.StatusUnauthorized},
		{name: "invalid bearer prefix", authHeader: "Token " + valid, expectedStatus: http.StatusUnauthorized},
		{name: "empty token", authHeader: "Bearer ", expectedStatus: http.StatusUnauthorized},
		{name: "invalid token", authHeader: "Bearer invalid-token", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(JWTAuth(verifier))
			router.GET("/test", func(c *gin.Context) {
				claims, ok := c.Get("claims")
				assert.True(t, ok)
				assert.Equal(t, "ops@example.com", claims.(*Claims).Email)
				c.String(http.StatusOK, GetActor(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set(AuthorizationHeader, tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ops@example.com", w.Body.String())
			}
		})
	}
}
