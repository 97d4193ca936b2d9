// Package export renders a generated batch as the workbook handed to the
// label printer and the packing floor: one worksheet per view.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/tracecode"
	"github.com/xuri/excelize/v2"
)

// Worksheet names, in workbook order.
const (
	SummarySheet          = "Summary"
	MasterCodesSheet      = "Master Codes"
	IndividualCodesSheet  = "Individual Codes"
	ProductBreakdownSheet = "Product Breakdown"
	PackingListSheet      = "Packing List"
)

// ContentType is the media type of the workbook written by WriteXLSX.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one named table of the export. Cells hold strings or ints.
type Sheet struct {
	Name string
	Rows [][]any
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the workbook creation timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// Exporter writes batches with tracking URLs rooted at a base URL.
type Exporter struct {
	baseURL string
	now     func() time.Time
}

// New creates an Exporter for tracking URLs under baseURL.
func New(baseURL string, opts ...Option) *Exporter {
	e := &Exporter{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FileName is the suggested download name for a batch export.
func FileName(orderNumber string) string {
	return "qr-codes-" + orderNumber + ".xlsx"
}

// WriteXLSX writes every sheet of result as a worksheet of one workbook on w.
func (e *Exporter) WriteXLSX(w io.Writer, result model.QRBatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	created := e.now().UTC().Format(time.RFC3339)
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:    "QR codes " + result.OrderNumber,
		Creator:  "trace-service",
		Created:  created,
		Modified: created,
	}); err != nil {
		return fmt.Errorf("set properties: %w", err)
	}

	for i, sheet := range e.Sheets(result) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("rename %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("create %s: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet); err != nil {
			return fmt.Errorf("write %s: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	return f.Write(w)
}

// writeSheet streams rows so that a full batch of individual codes does not
// build the whole worksheet in memory.
func writeSheet(f *excelize.File, sheet Sheet) error {
	sw, err := f.NewStreamWriter(sheet.Name)
	if err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// Sheets builds the export tables. The first row of each sheet is its header.
func (e *Exporter) Sheets(result model.QRBatchResult) []Sheet {
	return []Sheet{
		{Name: SummarySheet, Rows: summaryRows(result)},
		{Name: MasterCodesSheet, Rows: e.masterRows(result)},
		{Name: IndividualCodesSheet, Rows: e.individualRows(result)},
		{Name: ProductBreakdownSheet, Rows: breakdownRows(result)},
		{Name: PackingListSheet, Rows: packingRows(result)},
	}
}

func summaryRows(r model.QRBatchResult) [][]any {
	return [][]any{
		{"field", "value"},
		{"order_number", r.OrderNumber},
		{"total_base_units", r.TotalBaseUnits},
		{"buffer_percent", r.BufferPercent.String()},
		{"total_unique_codes", r.TotalUniqueCodes},
		{"emitted_codes", r.EmittedCodes()},
		{"discrepancy", r.Discrepancy()},
		{"units_per_case", r.UnitsPerCase},
		{"total_master_codes", r.TotalMasterCodes},
		{"rounding_policy", string(r.RoundingPolicy)},
		{"digest", r.Digest},
	}
}

func (e *Exporter) masterRows(r model.QRBatchResult) [][]any {
	packed := r.CaseUnitCounts()
	rows := make([][]any, 0, len(r.MasterCodes)+1)
	rows = append(rows, []any{"case_number", "code", "expected_unit_count", "packed_unit_count", "tracking_url"})
	for _, m := range r.MasterCodes {
		count := 0
		if m.CaseNumber >= 1 && m.CaseNumber <= len(packed) {
			count = packed[m.CaseNumber-1]
		}
		rows = append(rows, []any{
			m.CaseNumber,
			m.Code,
			m.ExpectedUnitCount,
			count,
			tracecode.KindTrackingURL(e.baseURL, model.KindMaster, m.Code),
		})
	}
	return rows
}

func (e *Exporter) individualRows(r model.QRBatchResult) [][]any {
	rows := make([][]any, 0, len(r.IndividualCodes)+1)
	rows = append(rows, []any{
		"sequence_number", "code", "product_code", "variant_code",
		"product_name", "variant_name", "case_number", "tracking_url",
	})
	for _, c := range r.IndividualCodes {
		rows = append(rows, []any{
			c.SequenceNumber,
			c.Code,
			c.ProductCode,
			c.VariantCode,
			c.ProductName,
			c.VariantName,
			c.CaseNumber,
			tracecode.KindTrackingURL(e.baseURL, model.KindIndividual, c.Code),
		})
	}
	return rows
}

// group is a run of individual codes sharing product, variant and (for the
// packing list) case. Sequences inside a group are contiguous.
type group struct {
	code  model.IndividualCode
	cases []int
	units int
	first int
	last  int
}

// collect splits codes into runs in sequence order. A run ends when the
// product, variant or (for the packing list) case changes, or when the
// sequence skips, so one product appears once per contiguous block.
func collect(codes []model.IndividualCode, byCase bool) []*group {
	var runs []*group
	var g *group
	for _, c := range codes {
		if g == nil || !continues(g, c, byCase) {
			g = &group{code: c, first: c.SequenceNumber}
			runs = append(runs, g)
		}
		g.units++
		g.last = c.SequenceNumber
		if n := len(g.cases); n == 0 || g.cases[n-1] != c.CaseNumber {
			g.cases = append(g.cases, c.CaseNumber)
		}
	}
	return runs
}

func continues(g *group, c model.IndividualCode, byCase bool) bool {
	if c.ProductCode != g.code.ProductCode || c.VariantCode != g.code.VariantCode {
		return false
	}
	if byCase && c.CaseNumber != g.code.CaseNumber {
		return false
	}
	return c.SequenceNumber == g.last+1
}

func breakdownRows(r model.QRBatchResult) [][]any {
	rows := [][]any{{
		"product_id", "variant_id", "product_code", "variant_code", "product_name", "variant_name",
		"units", "first_sequence", "last_sequence", "cases",
	}}
	for _, g := range collect(r.IndividualCodes, false) {
		cases := make([]string, len(g.cases))
		for i, n := range g.cases {
			cases[i] = strconv.Itoa(n)
		}
		rows = append(rows, []any{
			g.code.ProductID,
			g.code.VariantID,
			g.code.ProductCode,
			g.code.VariantCode,
			g.code.ProductName,
			g.code.VariantName,
			g.units,
			g.first,
			g.last,
			strings.Join(cases, ";"),
		})
	}
	return rows
}

func packingRows(r model.QRBatchResult) [][]any {
	rows := [][]any{{
		"case_number", "master_code", "product_code", "variant_code", "product_name", "variant_name",
		"units", "first_sequence", "last_sequence",
	}}
	for _, g := range collect(r.IndividualCodes, true) {
		caseNumber := g.code.CaseNumber
		rows = append(rows, []any{
			caseNumber,
			tracecode.MasterCodeString(r.OrderNumber, caseNumber),
			g.code.ProductCode,
			g.code.VariantCode,
			g.code.ProductName,
			g.code.VariantName,
			g.units,
			g.first,
			g.last,
		})
	}
	return rows
}
