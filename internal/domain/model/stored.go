package model

import "time"

// CodeStatus is the lifecycle state of a stored code.
// Only the value is read here; transitions are driven by scanning apps.
type CodeStatus string

const (
	StatusGenerated    CodeStatus = "generated"
	StatusManufactured CodeStatus = "manufactured"
	StatusInWarehouse  CodeStatus = "in_warehouse"
	StatusAtShop       CodeStatus = "at_shop"
	StatusConsumed     CodeStatus = "consumed"
)

// Valid reports whether s is a known status.
func (s CodeStatus) Valid() bool {
	switch s {
	case StatusGenerated, StatusManufactured, StatusInWarehouse, StatusAtShop, StatusConsumed:
		return true
	}
	return false
}

// StoredBatch is a persisted batch with its storage metadata.
//
// @Description Persisted batch
type StoredBatch struct {
	ID        string        `json:"id"`
	CreatedBy string        `json:"created_by,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Result    QRBatchResult `json:"result"`
}

// CodeRecord is a stored code as returned by a scan lookup.
//
// @Description Stored code with its current status
type CodeRecord struct {
	Code           string   `json:"code"`
	Kind           CodeKind `json:"kind"`
	OrderNumber    string   `json:"order_number"`
	CaseNumber     int      `json:"case_number"`
	SequenceNumber int      `json:"sequence_number,omitempty"`
	ProductID      string   `json:"product_id,omitempty"`
	VariantID      string   `json:"variant_id,omitempty"`
	ProductCode    string   `json:"product_code,omitempty"`
	VariantCode    string   `json:"variant_code,omitempty"`
	ProductName    string   `json:"product_name,omitempty"`
	VariantName    string   `json:"variant_name,omitempty"`
	// ExpectedUnitCount is set for master codes only.
	ExpectedUnitCount int        `json:"expected_unit_count,omitempty"`
	Status            CodeStatus `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}
