package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/logger"
	"github.com/guttosm/trace-service/internal/service"
)

// RequestLogger writes one structured line per request and, when
// loggingService is set, stores the same data in the log store.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		requestID := GetRequestID(c)
		actor := GetActor(c)

		log := logger.WithContext(map[string]interface{}{
			"request_id":  requestID,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": status,
			"duration_ms": latency.Milliseconds(),
			"ip":          c.ClientIP(),
			"actor":       actor,
		})
		switch levelForStatus(status) {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService == nil {
			return
		}
		entry := &model.LogEntry{
			Timestamp:  time.Now().UTC(),
			Level:      levelForStatus(status),
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: status,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Actor:      actor,
			Action:     model.ActionHTTPRequest,
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		dispatch(loggingService, entry)
	}
}

func levelForStatus(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "warn"
	default:
		return "info"
	}
}
