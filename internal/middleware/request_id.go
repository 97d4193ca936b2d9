// Package middleware provides the gin middleware chain of the trace service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// ActorKey is the context key for the authenticated caller.
	ActorKey ContextKey = "actor"
)

// RequestID ensures each request has an ID. A client-supplied X-Request-ID is
// reused when it is short enough; otherwise a UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// GetActor returns the authenticated caller, or "" for anonymous requests.
func GetActor(c *gin.Context) string {
	return c.GetString(string(ActorKey))
}

func setActor(c *gin.Context, actor string) {
	c.Set(string(ActorKey), actor)
}
