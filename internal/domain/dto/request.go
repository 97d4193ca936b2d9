// Package dto defines the HTTP request and response bodies of the trace service.
//
// DTOs keep the wire format separate from the domain model and carry the
// request validation that gin's binding tags cannot express.
package dto

import (
	"fmt"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/tracecode"
	"github.com/shopspring/decimal"
)

// BatchRequest is the body of the preview and generate endpoints.
//
// BufferPercent and UnitsPerCase are optional; the active packaging profile
// fills them in when omitted. BufferPercent accepts a JSON number or string.
//
// @Description Request to generate master and individual codes for an order
type BatchRequest struct {
	OrderNumber    string                `json:"order_number" binding:"required" example:"ORD-HM-2501-01"`
	BufferPercent  *decimal.Decimal      `json:"buffer_percent,omitempty" swaggertype:"string" example:"10"`
	UnitsPerCase   *int                  `json:"units_per_case,omitempty" example:"100"`
	RoundingPolicy model.RoundingPolicy  `json:"rounding_policy,omitempty" example:"per_line"`
	Lines          []model.OrderLineSpec `json:"lines"`
} // @name BatchRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidOrderNumber is returned when order_number does not have the ORD-<TYPE>-<YYMM>-<NN> shape.
	ErrInvalidOrderNumber = &ValidationError{Field: "order_number", Message: "must match ORD-<TYPE>-<YYMM>-<NN>"}
	// ErrInvalidUnitsPerCase is returned when units_per_case is not positive.
	ErrInvalidUnitsPerCase = &ValidationError{Field: "units_per_case", Message: "must be a positive integer"}
	// ErrInvalidBufferPercent is returned when buffer_percent is negative, above the maximum or too precise.
	ErrInvalidBufferPercent = &ValidationError{
		Field:   "buffer_percent",
		Message: fmt.Sprintf("must be between 0 and %s with at most %d decimal places", tracecode.MaxBufferPercent, tracecode.BufferScale),
	}
	// ErrInvalidRoundingPolicy is returned for an unknown rounding policy.
	ErrInvalidRoundingPolicy = &ValidationError{Field: "rounding_policy", Message: "must be per_line or per_batch"}
)

var tokenMessage = fmt.Sprintf("must be 1-%d letters, digits or underscores", tracecode.MaxTokenLength)

// Validate checks the request before it reaches the generator, so that the
// client gets a field-level message instead of a generic configuration error.
func (r *BatchRequest) Validate() error {
	if !tracecode.ValidOrderNumber(r.OrderNumber) {
		return ErrInvalidOrderNumber
	}
	if r.UnitsPerCase != nil && *r.UnitsPerCase <= 0 {
		return ErrInvalidUnitsPerCase
	}
	if r.BufferPercent != nil && !tracecode.ValidBufferPercent(*r.BufferPercent) {
		return ErrInvalidBufferPercent
	}
	if r.RoundingPolicy != "" && !r.RoundingPolicy.Valid() {
		return ErrInvalidRoundingPolicy
	}
	for i, l := range r.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		if l.Quantity < 0 {
			return &ValidationError{Field: field + ".quantity", Message: "must not be negative"}
		}
		if l.Quantity > tracecode.MaxSequence {
			return &ValidationError{Field: field + ".quantity", Message: fmt.Sprintf("must not exceed %d", tracecode.MaxSequence)}
		}
		if !tracecode.ValidToken(l.ProductCode) {
			return &ValidationError{Field: field + ".product_code", Message: tokenMessage}
		}
		if !tracecode.ValidToken(l.VariantCode) {
			return &ValidationError{Field: field + ".variant_code", Message: tokenMessage}
		}
	}
	return nil
}

// ValidateCodeRequest is the body of the code validation endpoint.
type ValidateCodeRequest struct {
	Code string `json:"code" binding:"required" example:"PROD-VAPE001-MINT-ORD-HM-2501-01-00001"`
} // @name ValidateCodeRequest

// UpdatePackagingProfileRequest is the body for replacing the active packaging profile.
type UpdatePackagingProfileRequest struct {
	BufferPercent decimal.Decimal `json:"buffer_percent" swaggertype:"string" example:"10"`
	UnitsPerCase  int             `json:"units_per_case" binding:"required,gt=0" example:"100"`
	CreatedBy     string          `json:"created_by,omitempty"`
} // @name UpdatePackagingProfileRequest

// Validate performs the checks binding tags cannot express.
func (r *UpdatePackagingProfileRequest) Validate() error {
	if r.UnitsPerCase <= 0 {
		return ErrInvalidUnitsPerCase
	}
	if !tracecode.ValidBufferPercent(r.BufferPercent) {
		return ErrInvalidBufferPercent
	}
	return nil
}
