package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/export"
	"github.com/guttosm/trace-service/internal/i18n"
	"github.com/guttosm/trace-service/internal/middleware"
	"github.com/guttosm/trace-service/internal/service"
)

// BatchHandler serves batch preview, generation, retrieval and export.
type BatchHandler struct {
	batches service.BatchService
	logging service.LoggingService
}

// NewBatchHandler creates a BatchHandler. logging may be nil.
func NewBatchHandler(batches service.BatchService, logging service.LoggingService) *BatchHandler {
	return &BatchHandler{batches: batches, logging: logging}
}

// bindBatchRequest writes the 400 response itself and returns false on failure.
func bindBatchRequest(c *gin.Context, builder *ResponseBuilder) (*dto.BatchRequest, bool) {
	req, err := BuildRequestAndValidate[dto.BatchRequest](c)
	if err == nil {
		return req, true
	}
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		builder.ValidationError(verr)
	} else {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
	}
	return nil, false
}

// Preview handles POST /api/batches/preview.
//
// @Summary      Preview a batch
// @Description  Generates master and individual codes for an order without storing them. Missing buffer_percent and units_per_case come from the active packaging profile.
// @Tags         Batches
// @Accept       json
// @Produce      json
// @Param        request body dto.BatchRequest true "Order lines"
// @Success      200 {object} dto.SuccessResponse{data=dto.BatchPreviewResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed body or field error"
// @Failure      422 {object} dto.ErrorResponse "Parameters cannot produce a batch"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/batches/preview [post]
func (h *BatchHandler) Preview(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindBatchRequest(c, builder)
	if !ok {
		return
	}

	result, err := h.batches.Preview(c.Request.Context(), *req)
	if err != nil {
		builder.FromError(err)
		return
	}
	builder.SuccessOK(dto.NewBatchPreviewResponse(result))
}

// Generate handles POST /api/batches.
//
// @Summary      Generate and store a batch
// @Description  Generates the codes for an order and stores them in one transaction. An order can be generated once. Repeating a request with the same Idempotency-Key replays the first response.
// @Tags         Batches
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.BatchRequest true "Order lines"
// @Success      201 {object} dto.SuccessResponse{data=dto.StoredBatchResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed body or field error"
// @Failure      409 {object} dto.ErrorResponse "Order already has a batch"
// @Failure      422 {object} dto.ErrorResponse "Parameters cannot produce a batch, or no units"
// @Failure      503 {object} dto.ErrorResponse "Code store is not configured"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/batches [post]
func (h *BatchHandler) Generate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindBatchRequest(c, builder)
	if !ok {
		return
	}

	stored, err := h.batches.Generate(c.Request.Context(), *req, middleware.GetActor(c))
	if err != nil {
		middleware.AuditLogError(h.logging, c, model.ActionGenerateBatch, req.OrderNumber, "QR batch generation failed", err, nil)
		builder.FromError(err)
		return
	}

	middleware.AuditLog(h.logging, c, model.ActionGenerateBatch, req.OrderNumber, "QR batch generated", map[string]interface{}{
		"batch_id":         stored.ID,
		"master_codes":     stored.Result.TotalMasterCodes,
		"individual_codes": stored.Result.EmittedCodes(),
		"discrepancy":      stored.Result.Discrepancy(),
		"digest":           stored.Result.Digest,
	})
	builder.SuccessCreated(dto.NewStoredBatchResponse(stored))
}

// Get handles GET /api/batches/:orderNumber.
//
// @Summary      Get a stored batch
// @Tags         Batches
// @Produce      json
// @Param        orderNumber path string true "Order number" example(ORD-HM-2501-01)
// @Success      200 {object} dto.SuccessResponse{data=dto.StoredBatchResponse}
// @Failure      404 {object} dto.ErrorResponse "No batch for the order"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/batches/{orderNumber} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stored, err := h.batches.Get(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		builder.FromError(err)
		return
	}
	builder.SuccessOK(dto.NewStoredBatchResponse(stored))
}

// Export handles GET /api/batches/:orderNumber/export.
//
// @Summary      Export a stored batch
// @Description  Returns an .xlsx workbook with summary, master code, individual code, product breakdown and packing list worksheets.
// @Tags         Batches
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        orderNumber path string true "Order number" example(ORD-HM-2501-01)
// @Success      200 {file} file
// @Failure      404 {object} dto.ErrorResponse "No batch for the order"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/batches/{orderNumber}/export [get]
func (h *BatchHandler) Export(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var buf bytes.Buffer
	if err := h.batches.Export(c.Request.Context(), orderNumber, &buf); err != nil {
		NewResponseBuilder(c).FromError(err)
		return
	}

	middleware.AuditLog(h.logging, c, model.ActionExportBatch, orderNumber, "QR batch exported", map[string]interface{}{
		"bytes": buf.Len(),
	})
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(orderNumber)+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
