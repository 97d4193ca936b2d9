package model

import (
	"time"
)

// Audit actions recorded for batch and profile changes.
const (
	ActionGenerateBatch  = "generate_batch"
	ActionExportBatch    = "export_batch"
	ActionUpdateProfile  = "update_packaging_profile"
	ActionHTTPRequest    = "http_request"
	ActionTrackingLookup = "tracking_lookup"
)

// LogEntry is an audit or request log record.
// Context-specific data goes into Fields.
type LogEntry struct {
	ID          string                 `json:"id,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
	Level       string                 `json:"level"`
	Message     string                 `json:"message"`
	RequestID   string                 `json:"request_id,omitempty"`
	Method      string                 `json:"method,omitempty"`
	Path        string                 `json:"path,omitempty"`
	StatusCode  int                    `json:"status_code,omitempty"`
	Duration    int64                  `json:"duration_ms,omitempty"`
	IP          string                 `json:"ip,omitempty"`
	UserAgent   string                 `json:"user_agent,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Actor       string                 `json:"actor,omitempty"`
	Action      string                 `json:"action,omitempty"`
	OrderNumber string                 `json:"order_number,omitempty"`
	Fields      map[string]interface{} `json:"fields,omitempty"`
}

// WithField adds a field to the entry, initializing Fields when nil.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters log queries.
type LogQueryOptions struct {
	RequestID   string
	Level       string
	Action      string
	OrderNumber string
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
	Skip        int
}
