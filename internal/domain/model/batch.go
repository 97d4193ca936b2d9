// Package model defines the core domain entities for the traceability service.
package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// RoundingPolicy selects how the buffer percentage is rounded when individual codes are emitted.
type RoundingPolicy string

const (
	// RoundPerLine rounds each line's buffered quantity up on its own.
	// The number of emitted codes may exceed TotalUniqueCodes.
	RoundPerLine RoundingPolicy = "per_line"
	// RoundPerBatch emits exactly TotalUniqueCodes codes, spreading the
	// rounded-up units over the lines by largest fractional remainder.
	RoundPerBatch RoundingPolicy = "per_batch"
)

// Valid reports whether p is a known policy.
func (p RoundingPolicy) Valid() bool {
	return p == RoundPerLine || p == RoundPerBatch
}

// OrderLineSpec is one product/variant line of an order.
//
// @Description Order line used as generator input
type OrderLineSpec struct {
	ProductID   string `json:"product_id" example:"5b6f0c1e-prod"`
	VariantID   string `json:"variant_id" example:"5b6f0c1e-var"`
	ProductCode string `json:"product_code" example:"VAPE001"`
	VariantCode string `json:"variant_code" example:"MINT"`
	ProductName string `json:"product_name" example:"Vape Classic"`
	VariantName string `json:"variant_name" example:"Mint"`
	// Quantity is the number of base (un-buffered) units ordered.
	Quantity int `json:"quantity" example:"95"`
}

// BatchConfig carries the per-request generation parameters.
type BatchConfig struct {
	OrderNumber   string
	BufferPercent decimal.Decimal
	UnitsPerCase  int
}

// MasterCode identifies one physical case.
type MasterCode struct {
	Code              string `json:"code" example:"MASTER-ORD-HM-2501-01-CASE-001"`
	CaseNumber        int    `json:"case_number" example:"1"`
	ExpectedUnitCount int    `json:"expected_unit_count" example:"100"`
}

// IndividualCode identifies one physical unit.
type IndividualCode struct {
	Code           string `json:"code" example:"PROD-VAPE001-MINT-ORD-HM-2501-01-00001"`
	SequenceNumber int    `json:"sequence_number" example:"1"`
	ProductID      string `json:"product_id"`
	VariantID      string `json:"variant_id"`
	ProductCode    string `json:"product_code" example:"VAPE001"`
	VariantCode    string `json:"variant_code" example:"MINT"`
	ProductName    string `json:"product_name"`
	VariantName    string `json:"variant_name"`
	CaseNumber     int    `json:"case_number" example:"1"`
}

// QRBatchResult is the complete, immutable output of one generation run.
//
// @Description Generated master and individual codes for an order
type QRBatchResult struct {
	OrderNumber      string           `json:"order_number" example:"ORD-HM-2501-01"`
	MasterCodes      []MasterCode     `json:"master_codes"`
	IndividualCodes  []IndividualCode `json:"individual_codes"`
	TotalMasterCodes int              `json:"total_master_codes" example:"2"`
	TotalUniqueCodes int              `json:"total_unique_codes" example:"105"`
	TotalBaseUnits   int              `json:"total_base_units" example:"95"`
	BufferPercent    decimal.Decimal  `json:"buffer_percent" swaggertype:"string" example:"10"`
	UnitsPerCase     int              `json:"units_per_case" example:"100"`
	RoundingPolicy   RoundingPolicy   `json:"rounding_policy" example:"per_line"`
	// Digest is a hex BLAKE2b-256 over every code string, masters first.
	Digest string `json:"digest"`
}

// Clone returns a copy of r whose code slices do not share backing arrays with r.
func (r QRBatchResult) Clone() QRBatchResult {
	r.MasterCodes = slices.Clone(r.MasterCodes)
	r.IndividualCodes = slices.Clone(r.IndividualCodes)
	return r
}

// EmittedCodes returns the number of individual codes actually produced.
func (r QRBatchResult) EmittedCodes() int {
	return len(r.IndividualCodes)
}

// Discrepancy is the number of emitted codes beyond the batch-level plan.
// It is only non-zero under RoundPerLine.
func (r QRBatchResult) Discrepancy() int {
	return len(r.IndividualCodes) - r.TotalUniqueCodes
}

// CaseUnitCounts returns the number of individual codes packed into each case, indexed by case number - 1.
func (r QRBatchResult) CaseUnitCounts() []int {
	counts := make([]int, r.TotalMasterCodes)
	for _, c := range r.IndividualCodes {
		if c.CaseNumber >= 1 && c.CaseNumber <= len(counts) {
			counts[c.CaseNumber-1]++
		}
	}
	return counts
}

// CodeKind distinguishes the two code shapes.
type CodeKind string

const (
	// KindIndividual is a unit-level code (PROD-...).
	KindIndividual CodeKind = "individual"
	// KindMaster is a case-level code (MASTER-...).
	KindMaster CodeKind = "master"
)

// TrackingSegment returns the path segment used in tracking URLs.
func (k CodeKind) TrackingSegment() string {
	if k == KindMaster {
		return "master"
	}
	return "product"
}

// ParsedCode holds the fields extracted from a code string.
type ParsedCode struct {
	Kind           CodeKind `json:"kind" example:"individual"`
	Raw            string   `json:"raw"`
	OrderNumber    string   `json:"order_number" example:"ORD-HM-2501-01"`
	OrderType      string   `json:"order_type" example:"HM"`
	Period         string   `json:"period" example:"2501"`
	OrderSequence  int      `json:"order_sequence" example:"1"`
	ProductCode    string   `json:"product_code,omitempty" example:"VAPE001"`
	VariantCode    string   `json:"variant_code,omitempty" example:"MINT"`
	SequenceNumber int      `json:"sequence_number,omitempty" example:"1"`
	CaseNumber     int      `json:"case_number,omitempty"`
}
