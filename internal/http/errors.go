package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/trace-service/internal/circuitbreaker"
	"github.com/guttosm/trace-service/internal/i18n"
	"github.com/guttosm/trace-service/internal/service"
	"github.com/guttosm/trace-service/internal/tracecode"
)

// errorStatus maps service and engine errors to an HTTP status and message key.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, tracecode.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity, i18n.ErrKeyInvalidConfiguration
	case errors.Is(err, service.ErrEmptyBatch):
		return http.StatusUnprocessableEntity, i18n.ErrKeyEmptyBatch
	case errors.Is(err, service.ErrBatchExists):
		return http.StatusConflict, i18n.ErrKeyBatchExists
	case errors.Is(err, service.ErrBatchNotFound):
		return http.StatusNotFound, i18n.ErrKeyBatchNotFound
	case errors.Is(err, service.ErrCodeNotFound):
		return http.StatusNotFound, i18n.ErrKeyCodeNotFound
	case errors.Is(err, service.ErrInvalidCode):
		return http.StatusBadRequest, i18n.ErrKeyInvalidCode
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
