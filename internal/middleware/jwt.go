package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/trace-service/internal/i18n"
)

const (
	// AuthorizationHeader carries the bearer token.
	AuthorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// ErrNoSecret is returned by NewTokenVerifier without a signing secret.
var ErrNoSecret = errors.New("jwt secret is not configured")

// Claims are the fields read from tokens issued by the auth service.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Actor names the caller for audit entries: email when present, subject otherwise.
func (c *Claims) Actor() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// TokenVerifier checks HS256 tokens signed with a shared secret.
// Tokens are issued elsewhere; this service never signs.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenVerifier creates a verifier. A non-empty issuer must match the iss claim.
func NewTokenVerifier(secret, issuer string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &TokenVerifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}, nil
}

// Verify parses and validates a token string.
func (v *TokenVerifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// JWTAuth requires a valid bearer token.
func JWTAuth(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checkBearer(c, verifier) {
			c.Next()
		}
	}
}

// checkBearer aborts the request and returns false unless the Authorization
// header holds a valid bearer token.
func checkBearer(c *gin.Context, verifier *TokenVerifier) bool {
	header := c.GetHeader(AuthorizationHeader)
	if header == "" {
		abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
		return false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if !strings.HasPrefix(header, bearerPrefix) || token == "" {
		abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
		return false
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
		return false
	}

	setActor(c, claims.Actor())
	c.Set("claims", claims)
	return true
}
