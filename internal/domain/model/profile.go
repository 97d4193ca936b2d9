package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackagingProfile is the active default for requests that omit buffer or case size.
//
// @Description Packaging defaults applied to batch requests
type PackagingProfile struct {
	ID            string          `json:"id,omitempty"`
	BufferPercent decimal.Decimal `json:"buffer_percent" swaggertype:"string" example:"10"`
	UnitsPerCase  int             `json:"units_per_case" example:"100"`
	Active        bool            `json:"active"`
	Version       int             `json:"version" example:"1"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DefaultPackagingProfile returns the built-in profile: 10% buffer, 100 units per case.
func DefaultPackagingProfile() PackagingProfile {
	return PackagingProfile{
		BufferPercent: decimal.NewFromInt(10),
		UnitsPerCase:  100,
		Active:        true,
	}
}
