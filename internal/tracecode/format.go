// Package tracecode generates and parses the QR code strings used for case and unit traceability.
//
// Two shapes are produced:
//
//	MASTER-<orderNumber>-CASE-<case:3 digits>
//	PROD-<productCode>-<variantCode>-<orderNumber>-<sequence:5 digits>
//
// where orderNumber is ORD-<TYPE>-<YYMM>-<NN>. The strings are printed on labels and read back by
// scanners, so field order, padding width and the "-" delimiter are fixed.
package tracecode

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

const (
	// Separator delimits every field of a code string.
	Separator = "-"

	masterPrefix     = "MASTER"
	individualPrefix = "PROD"
	caseMarker       = "CASE"

	// MaxSequence is the largest sequence number representable in five digits.
	MaxSequence = 99999
	// MaxCases is the largest case number representable in three digits.
	MaxCases = 999
	// MaxTokenLength bounds product and variant codes so a full code fits the 160-char code column.
	MaxTokenLength = 64
	// BufferScale is the number of decimal places a buffer percentage may carry.
	BufferScale = 4
)

// MaxBufferPercent is the largest accepted buffer percentage.
var MaxBufferPercent = decimal.NewFromInt(1000)

// ErrInvalidConfiguration is wrapped by every generator precondition failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

var (
	orderNumberRe = regexp.MustCompile(`^ORD-[A-Z]{2}-[0-9]{4}-[0-9]{2}$`)
	tokenRe       = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)
	orderTypeRe   = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ValidOrderNumber reports whether s has the ORD-<TYPE>-<YYMM>-<NN> shape.
func ValidOrderNumber(s string) bool {
	return orderNumberRe.MatchString(s)
}

// ValidToken reports whether s can be embedded as a product or variant code.
func ValidToken(s string) bool {
	return tokenRe.MatchString(s)
}

// ValidBufferPercent reports whether p is within 0..MaxBufferPercent and has at most BufferScale
// decimal places.
func ValidBufferPercent(p decimal.Decimal) bool {
	if p.IsNegative() || p.GreaterThan(MaxBufferPercent) {
		return false
	}
	return p.Equal(p.Truncate(BufferScale))
}

// FormatOrderNumber builds an order number from its parts.
// orderType is upper-cased; seq must be in 1..99.
func FormatOrderNumber(orderType string, t time.Time, seq int) (string, error) {
	orderType = strings.ToUpper(orderType)
	if !orderTypeRe.MatchString(orderType) {
		return "", fmt.Errorf("%w: order type %q must be two letters", ErrInvalidConfiguration, orderType)
	}
	if seq < 1 || seq > 99 {
		return "", fmt.Errorf("%w: order sequence %d out of range 1..99", ErrInvalidConfiguration, seq)
	}
	return fmt.Sprintf("ORD-%s-%s-%02d", orderType, t.Format("0601"), seq), nil
}

// MasterCodeString formats the case-level code for caseNumber.
func MasterCodeString(orderNumber string, caseNumber int) string {
	return fmt.Sprintf("%s-%s-%s-%03d", masterPrefix, orderNumber, caseMarker, caseNumber)
}

// IndividualCodeString formats the unit-level code for sequence.
func IndividualCodeString(productCode, variantCode, orderNumber string, sequence int) string {
	return fmt.Sprintf("%s-%s-%s-%s-%05d", individualPrefix, productCode, variantCode, orderNumber, sequence)
}

// TrackingURL returns <baseURL>/track/{master|product}/<code>.
// It returns "" when code is not a recognised code.
func TrackingURL(baseURL, code string) string {
	parsed, ok := ParseCode(code)
	if !ok {
		return ""
	}
	return KindTrackingURL(baseURL, parsed.Kind, code)
}

// KindTrackingURL builds the tracking URL for a code whose kind is already known.
func KindTrackingURL(baseURL string, kind model.CodeKind, code string) string {
	return strings.TrimRight(baseURL, "/") + "/track/" + kind.TrackingSegment() + "/" + code
}

// KindFromTrackingSegment maps a tracking URL segment back to a code kind.
func KindFromTrackingSegment(segment string) (model.CodeKind, bool) {
	switch segment {
	case "master":
		return model.KindMaster, true
	case "product":
		return model.KindIndividual, true
	default:
		return "", false
	}
}
