package dto

import (
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
)

// BatchPreviewResponse wraps a generated batch with the figures reviewers check
// before printing labels.
//
// @Description Generated batch with per-case unit counts
type BatchPreviewResponse struct {
	model.QRBatchResult
	EmittedCodes   int   `json:"emitted_codes" example:"105"`
	Discrepancy    int   `json:"discrepancy" example:"0"`
	CaseUnitCounts []int `json:"case_unit_counts"`
} // @name BatchPreviewResponse

// NewBatchPreviewResponse builds the preview body from a result.
func NewBatchPreviewResponse(r model.QRBatchResult) BatchPreviewResponse {
	return BatchPreviewResponse{
		QRBatchResult:  r,
		EmittedCodes:   r.EmittedCodes(),
		Discrepancy:    r.Discrepancy(),
		CaseUnitCounts: r.CaseUnitCounts(),
	}
}

// ValidateCodeResponse reports whether a code is well formed and, if so, its fields.
//
// @Description Code validation result
type ValidateCodeResponse struct {
	Valid  bool              `json:"valid" example:"true"`
	Parsed *model.ParsedCode `json:"parsed,omitempty"`
} // @name ValidateCodeResponse

// StoredBatchResponse is a persisted batch with its storage metadata.
//
// @Description Stored batch
type StoredBatchResponse struct {
	ID        string    `json:"id" example:"0d9d6d4e-5d0c-4c43-8f0e-4b7f3f2a9c11"`
	CreatedBy string    `json:"created_by,omitempty" example:"ops@example.com"`
	CreatedAt time.Time `json:"created_at"`
	BatchPreviewResponse
} // @name StoredBatchResponse

// NewStoredBatchResponse builds the body returned for stored batches.
func NewStoredBatchResponse(b *model.StoredBatch) StoredBatchResponse {
	return StoredBatchResponse{
		ID:                   b.ID,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            b.CreatedAt,
		BatchPreviewResponse: NewBatchPreviewResponse(b.Result),
	}
}
