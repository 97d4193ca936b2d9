package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/i18n"
	"github.com/guttosm/trace-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and answers 500 when
// the handler did not write a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()

		log := logger.Logger()
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}
	}
}

// abortWithError writes the standard error envelope with a localized message.
func abortWithError(c *gin.Context, status int, messageKey string) {
	resp := dto.NewError(dto.ErrCodeFromStatus(status), i18n.T(c, messageKey)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, resp)
}
