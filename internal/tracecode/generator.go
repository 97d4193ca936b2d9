package tracecode

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

var hundred = decimal.NewFromInt(100)

// Generator turns an order's lines into a QRBatchResult.
// It holds no state between calls and is safe for concurrent use.
type Generator struct {
	policy model.RoundingPolicy
}

// Option configures a Generator.
type Option func(*Generator)

// WithRoundingPolicy selects how buffered line quantities are rounded.
// Unknown policies are ignored.
func WithRoundingPolicy(p model.RoundingPolicy) Option {
	return func(g *Generator) {
		if p.Valid() {
			g.policy = p
		}
	}
}

// NewGenerator creates a Generator. The default policy is model.RoundPerLine.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{policy: model.RoundPerLine}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Policy returns the rounding policy in use.
func (g *Generator) Policy() model.RoundingPolicy {
	return g.policy
}

// GenerateBatch is shorthand for NewGenerator(opts...).Generate(cfg, lines).
func GenerateBatch(cfg model.BatchConfig, lines []model.OrderLineSpec, opts ...Option) (model.QRBatchResult, error) {
	return NewGenerator(opts...).Generate(cfg, lines)
}

// BufferedQuantity returns ceil(qty × (1 + bufferPercent/100)) using exact decimal arithmetic.
func BufferedQuantity(qty int, bufferPercent decimal.Decimal) int {
	return int(bufferedExact(qty, bufferPercent).Ceil().IntPart())
}

func bufferedExact(qty int, bufferPercent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(qty)).Mul(hundred.Add(bufferPercent)).Shift(-2)
}

// batchPlan is the batch-level view used for master codes.
type batchPlan struct {
	totalBaseUnits   int
	totalUniqueCodes int
	totalMasterCodes int
}

func planBatch(cfg model.BatchConfig, lines []model.OrderLineSpec) batchPlan {
	var base int
	for _, l := range lines {
		base += l.Quantity
	}
	unique := BufferedQuantity(base, cfg.BufferPercent)
	return batchPlan{
		totalBaseUnits:   base,
		totalUniqueCodes: unique,
		totalMasterCodes: (unique + cfg.UnitsPerCase - 1) / cfg.UnitsPerCase,
	}
}

// Generate validates every precondition before building any output, so the caller either gets a
// complete batch or an error wrapping ErrInvalidConfiguration.
func (g *Generator) Generate(cfg model.BatchConfig, lines []model.OrderLineSpec) (model.QRBatchResult, error) {
	if err := validate(cfg, lines); err != nil {
		return model.QRBatchResult{}, err
	}

	plan := planBatch(cfg, lines)
	quantities := g.lineQuantities(cfg, lines, plan)

	var emitted int
	for _, q := range quantities {
		emitted += q
	}
	if emitted > MaxSequence {
		return model.QRBatchResult{}, fmt.Errorf("%w: %d individual codes exceed the %d-code limit",
			ErrInvalidConfiguration, emitted, MaxSequence)
	}
	if plan.totalMasterCodes > MaxCases {
		return model.QRBatchResult{}, fmt.Errorf("%w: %d cases exceed the %d-case limit",
			ErrInvalidConfiguration, plan.totalMasterCodes, MaxCases)
	}

	masters := buildMasterCodes(cfg.OrderNumber, plan, cfg.UnitsPerCase)

	p := packer{
		orderNumber:  cfg.OrderNumber,
		unitsPerCase: cfg.UnitsPerCase,
		lastCase:     plan.totalMasterCodes,
		nextSequence: 1,
		caseNumber:   1,
		codes:        make([]model.IndividualCode, 0, emitted),
	}
	for i, line := range lines {
		p = p.pack(line, quantities[i])
	}

	return model.QRBatchResult{
		OrderNumber:      cfg.OrderNumber,
		MasterCodes:      masters,
		IndividualCodes:  p.codes,
		TotalMasterCodes: plan.totalMasterCodes,
		TotalUniqueCodes: plan.totalUniqueCodes,
		TotalBaseUnits:   plan.totalBaseUnits,
		BufferPercent:    cfg.BufferPercent,
		UnitsPerCase:     cfg.UnitsPerCase,
		RoundingPolicy:   g.policy,
		Digest:           digest(masters, p.codes),
	}, nil
}

func validate(cfg model.BatchConfig, lines []model.OrderLineSpec) error {
	if cfg.UnitsPerCase <= 0 {
		return fmt.Errorf("%w: units per case must be positive, got %d", ErrInvalidConfiguration, cfg.UnitsPerCase)
	}
	if cfg.BufferPercent.IsNegative() {
		return fmt.Errorf("%w: buffer percent must not be negative, got %s", ErrInvalidConfiguration, cfg.BufferPercent)
	}
	if cfg.BufferPercent.GreaterThan(MaxBufferPercent) {
		return fmt.Errorf("%w: buffer percent %s exceeds %s", ErrInvalidConfiguration, cfg.BufferPercent, MaxBufferPercent)
	}
	if !ValidBufferPercent(cfg.BufferPercent) {
		return fmt.Errorf("%w: buffer percent %s has more than %d decimal places",
			ErrInvalidConfiguration, cfg.BufferPercent, BufferScale)
	}
	if !ValidOrderNumber(cfg.OrderNumber) {
		return fmt.Errorf("%w: order number %q does not match ORD-<TYPE>-<YYMM>-<NN>", ErrInvalidConfiguration, cfg.OrderNumber)
	}
	var total int
	for i, l := range lines {
		if l.Quantity < 0 {
			return fmt.Errorf("%w: line %d quantity must not be negative, got %d", ErrInvalidConfiguration, i, l.Quantity)
		}
		if l.Quantity > MaxSequence {
			return fmt.Errorf("%w: line %d quantity %d exceeds the %d-code limit", ErrInvalidConfiguration, i, l.Quantity, MaxSequence)
		}
		if !ValidToken(l.ProductCode) {
			return fmt.Errorf("%w: line %d product code %q must be 1-64 letters, digits or underscores", ErrInvalidConfiguration, i, l.ProductCode)
		}
		if !ValidToken(l.VariantCode) {
			return fmt.Errorf("%w: line %d variant code %q must be 1-64 letters, digits or underscores", ErrInvalidConfiguration, i, l.VariantCode)
		}
		total += l.Quantity
	}
	// Checked on the exact value so the int conversion in planBatch never overflows.
	if bufferedExact(total, cfg.BufferPercent).Ceil().GreaterThan(decimal.NewFromInt(MaxSequence)) {
		return fmt.Errorf("%w: buffered quantity of %d units at %s%% exceeds the %d-code limit",
			ErrInvalidConfiguration, total, cfg.BufferPercent, MaxSequence)
	}
	return nil
}

// lineQuantities returns the number of codes to emit for each line.
func (g *Generator) lineQuantities(cfg model.BatchConfig, lines []model.OrderLineSpec, plan batchPlan) []int {
	if g.policy == model.RoundPerBatch {
		return allocatePerBatch(lines, cfg.BufferPercent, plan.totalUniqueCodes)
	}
	quantities := make([]int, len(lines))
	for i, l := range lines {
		quantities[i] = BufferedQuantity(l.Quantity, cfg.BufferPercent)
	}
	return quantities
}

// allocatePerBatch gives each line floor(qty × factor) and hands the remaining units, one each,
// to the lines with the largest fractional part. Ties go to the earlier line.
func allocatePerBatch(lines []model.OrderLineSpec, bufferPercent decimal.Decimal, total int) []int {
	quantities := make([]int, len(lines))
	fractions := make([]decimal.Decimal, len(lines))
	order := make([]int, len(lines))

	allocated := 0
	for i, l := range lines {
		exact := bufferedExact(l.Quantity, bufferPercent)
		floor := exact.Floor()
		quantities[i] = int(floor.IntPart())
		fractions[i] = exact.Sub(floor)
		order[i] = i
		allocated += quantities[i]
	}

	sort.SliceStable(order, func(a, b int) bool {
		return fractions[order[a]].GreaterThan(fractions[order[b]])
	})
	for k := 0; k < total-allocated && k < len(order); k++ {
		quantities[order[k]]++
	}
	return quantities
}

func buildMasterCodes(orderNumber string, plan batchPlan, unitsPerCase int) []model.MasterCode {
	masters := make([]model.MasterCode, plan.totalMasterCodes)
	for i := range masters {
		caseNumber := i + 1
		expected := unitsPerCase
		if caseNumber == plan.totalMasterCodes {
			expected = plan.totalUniqueCodes - (plan.totalMasterCodes-1)*unitsPerCase
		}
		masters[i] = model.MasterCode{
			Code:              MasterCodeString(orderNumber, caseNumber),
			CaseNumber:        caseNumber,
			ExpectedUnitCount: expected,
		}
	}
	return masters
}

// packer is the running state threaded through the lines: next sequence number, current case and
// how many units the current case already holds. The case number never passes lastCase; once the
// last planned case is reached, further units accumulate there.
type packer struct {
	orderNumber  string
	unitsPerCase int
	lastCase     int

	nextSequence int
	caseNumber   int
	inCase       int
	codes        []model.IndividualCode
}

func (p packer) pack(line model.OrderLineSpec, qty int) packer {
	for i := 0; i < qty; i++ {
		p.codes = append(p.codes, model.IndividualCode{
			Code:           IndividualCodeString(line.ProductCode, line.VariantCode, p.orderNumber, p.nextSequence),
			SequenceNumber: p.nextSequence,
			ProductID:      line.ProductID,
			VariantID:      line.VariantID,
			ProductCode:    line.ProductCode,
			VariantCode:    line.VariantCode,
			ProductName:    line.ProductName,
			VariantName:    line.VariantName,
			CaseNumber:     p.caseNumber,
		})
		p.nextSequence++
		p.inCase++
		if p.inCase >= p.unitsPerCase && p.caseNumber < p.lastCase {
			p.caseNumber++
			p.inCase = 0
		}
	}
	return p
}

func digest(masters []model.MasterCode, individuals []model.IndividualCode) string {
	h, _ := blake2b.New256(nil)
	for _, m := range masters {
		h.Write([]byte(m.Code))
		h.Write([]byte{'\n'})
	}
	for _, c := range individuals {
		h.Write([]byte(c.Code))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
