package middleware

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/i18n"
	"golang.org/x/crypto/blake2b"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 24 * time.Hour
)

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Timestamp   time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled config with a fresh cache.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return NewIdempotencyConfig(IdempotencyKeyTTL)
}

// NewIdempotencyConfig returns an enabled config whose responses live for ttl.
func NewIdempotencyConfig(ttl time.Duration) IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(ttl),
		Enabled: true,
	}
}

// Stop releases the cache's cleanup goroutine.
func (cfg IdempotencyConfig) Stop() {
	if cfg.Cache != nil {
		cfg.Cache.Stop()
	}
}

// Idempotency replays the stored 2xx response for a repeated Idempotency-Key
// on POST and PUT. A retry that arrives while the first request is still
// running gets 409. The key is scoped to caller, method, path and body.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := idempotencyCacheKey(key, GetActor(c), c.Request)

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		if !cfg.Cache.Begin(cacheKey) {
			abortWithError(c, http.StatusConflict, i18n.ErrKeyIdempotencyConflict)
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		var stored *cachedResponse
		defer func() {
			cfg.Cache.Finish(cacheKey, stored)
		}()

		c.Next()

		if status := writer.Status(); status >= 200 && status < 300 {
			stored = &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}
		}
	}
}

func idempotencyCacheKey(key, actor string, req *http.Request) string {
	h, _ := blake2b.New256(nil)
	for _, part := range []string{key, actor, req.Method, req.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// capturingWriter copies the response body for caching.
type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
