package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundingPolicy_Valid(t *testing.T) {
	assert.True(t, RoundPerLine.Valid())
	assert.True(t, RoundPerBatch.Valid())
	assert.False(t, RoundingPolicy("").Valid())
	assert.False(t, RoundingPolicy("nearest").Valid())
}

func TestQRBatchResult_Counts(t *testing.T) {
	r := QRBatchResult{
		TotalMasterCodes: 2,
		TotalUniqueCodes: 4,
		IndividualCodes: []IndividualCode{
			{SequenceNumber: 1, CaseNumber: 1},
			{SequenceNumber: 2, CaseNumber: 1},
			{SequenceNumber: 3, CaseNumber: 2},
			{SequenceNumber: 4, CaseNumber: 2},
			{SequenceNumber: 5, CaseNumber: 2},
		},
	}

	assert.Equal(t, 5, r.EmittedCodes())
	assert.Equal(t, 1, r.Discrepancy())
	assert.Equal(t, []int{2, 3}, r.CaseUnitCounts())
}

func TestQRBatchResult_Clone(t *testing.T) {
	r := QRBatchResult{
		OrderNumber:     "ORD-HM-2501-01",
		MasterCodes:     []MasterCode{{Code: "MASTER-ORD-HM-2501-01-CASE-001", CaseNumber: 1, ExpectedUnitCount: 2}},
		IndividualCodes: []IndividualCode{{Code: "a", CaseNumber: 1}, {Code: "b", CaseNumber: 1}},
	}

	c := r.Clone()
	assert.Equal(t, r, c)

	c.MasterCodes[0].ExpectedUnitCount = 9
	c.IndividualCodes[0].Code = "z"
	assert.Equal(t, 2, r.MasterCodes[0].ExpectedUnitCount)
	assert.Equal(t, "a", r.IndividualCodes[0].Code)

	assert.Nil(t, QRBatchResult{}.Clone().IndividualCodes)
}

func TestCodeKind_TrackingSegment(t *testing.T) {
	assert.Equal(t, "master", KindMaster.TrackingSegment())
	assert.Equal(t, "product", KindIndividual.TrackingSegment())
}

func TestCodeStatus_Valid(t *testing.T) {
	for _, s := range []CodeStatus{StatusGenerated, StatusManufactured, StatusInWarehouse, StatusAtShop, StatusConsumed} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, CodeStatus("lost").Valid())
}

func TestDefaultPackagingProfile(t *testing.T) {
	p := DefaultPackagingProfile()

	assert.Equal(t, "10", p.BufferPercent.String())
	assert.Equal(t, 100, p.UnitsPerCase)
	assert.True(t, p.Active)
}
