package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/i18n"
	"github.com/guttosm/trace-service/internal/middleware"
	"github.com/guttosm/trace-service/internal/service"
	"github.com/guttosm/trace-service/internal/tracecode"
)

// CodeHandler serves code validation and the public scan lookup.
type CodeHandler struct {
	batches service.BatchService
	logging service.LoggingService
}

// NewCodeHandler creates a CodeHandler. logging may be nil.
func NewCodeHandler(batches service.BatchService, logging service.LoggingService) *CodeHandler {
	return &CodeHandler{batches: batches, logging: logging}
}

// ValidateCode handles POST /api/codes/validate.
//
// @Summary      Validate a code
// @Description  Parses a master or individual code. Malformed codes return valid=false, not an error.
// @Tags         Codes
// @Accept       json
// @Produce      json
// @Param        request body dto.ValidateCodeRequest true "Code to validate"
// @Success      200 {object} dto.SuccessResponse{data=dto.ValidateCodeResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed body"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/codes/validate [post]
func (h *CodeHandler) ValidateCode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ValidateCodeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
		return
	}

	parsed, ok := h.batches.ValidateCode(req.Code)
	resp := dto.ValidateCodeResponse{Valid: ok}
	if ok {
		resp.Parsed = &parsed
	}
	builder.SuccessOK(resp)
}

// Track handles GET /track/:kind/:code, the target of printed QR labels.
//
// @Summary      Look up a scanned code
// @Description  Resolves a code printed on a label to its stored record and lifecycle status. kind is master or product and must match the code.
// @Tags         Tracking
// @Produce      json
// @Param        kind path string true "Code kind" Enums(master, product)
// @Param        code path string true "Scanned code"
// @Success      200 {object} dto.SuccessResponse{data=model.CodeRecord}
// @Failure      400 {object} dto.ErrorResponse "Malformed code"
// @Failure      404 {object} dto.ErrorResponse "Unknown code or kind"
// @Router       /track/{kind}/{code} [get]
func (h *CodeHandler) Track(c *gin.Context) {
	builder := NewResponseBuilder(c)

	kind, ok := tracecode.KindFromTrackingSegment(c.Param("kind"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	code := c.Param("code")
	if parsed, valid := tracecode.ParseCode(code); valid && parsed.Kind != kind {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCodeNotFound, nil)
		return
	}

	record, err := h.batches.Lookup(c.Request.Context(), code)
	if err != nil {
		builder.FromError(err)
		return
	}

	middleware.AuditLog(h.logging, c, model.ActionTrackingLookup, record.OrderNumber, "QR code scanned", map[string]interface{}{
		"code":   record.Code,
		"kind":   string(record.Kind),
		"status": string(record.Status),
	})
	builder.SuccessOK(record)
}
