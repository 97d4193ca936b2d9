package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/service"
)

// AuditLog records a state-changing action, such as a batch generation or a
// packaging profile update, against orderNumber.
func AuditLog(loggingService service.LoggingService, c *gin.Context, action, orderNumber, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	dispatch(loggingService, auditEntry(c, "info", action, orderNumber, message, fields))
}

// AuditLogError records a failed action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, action, orderNumber, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", action, orderNumber, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	dispatch(loggingService, entry)
}

func auditEntry(c *gin.Context, level, action, orderNumber, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:   time.Now().UTC(),
		Level:       level,
		Message:     message,
		RequestID:   GetRequestID(c),
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		IP:          c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		Actor:       GetActor(c),
		Action:      action,
		OrderNumber: orderNumber,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
