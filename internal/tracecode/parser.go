package tracecode

import (
	"regexp"
	"strconv"

	"github.com/guttosm/trace-service/internal/domain/model"
)

// Product and variant tokens exclude the separator, so each field has exactly one match.
var (
	individualRe = regexp.MustCompile(
		`^PROD-([A-Za-z0-9_]{1,64})-([A-Za-z0-9_]{1,64})-(ORD-([A-Z]{2})-([0-9]{4})-([0-9]{2}))-([0-9]{5})$`)
	masterRe = regexp.MustCompile(
		`^MASTER-(ORD-([A-Z]{2})-([0-9]{4})-([0-9]{2}))-CASE-([0-9]{3})$`)
)

// IsValidCode reports whether code has either the individual or the master shape.
func IsValidCode(code string) bool {
	return individualRe.MatchString(code) || masterRe.MatchString(code)
}

// ParseCode extracts the fields of an individual or master code.
// An unrecognised string is a normal outcome and yields false.
func ParseCode(code string) (model.ParsedCode, bool) {
	if m := individualRe.FindStringSubmatch(code); m != nil {
		return model.ParsedCode{
			Kind:           model.KindIndividual,
			Raw:            code,
			ProductCode:    m[1],
			VariantCode:    m[2],
			OrderNumber:    m[3],
			OrderType:      m[4],
			Period:         m[5],
			OrderSequence:  atoi(m[6]),
			SequenceNumber: atoi(m[7]),
		}, true
	}
	if m := masterRe.FindStringSubmatch(code); m != nil {
		return model.ParsedCode{
			Kind:          model.KindMaster,
			Raw:           code,
			OrderNumber:   m[1],
			OrderType:     m[2],
			Period:        m[3],
			OrderSequence: atoi(m[4]),
			CaseNumber:    atoi(m[5]),
		}, true
	}
	return model.ParsedCode{}, false
}

// atoi is only called on regexp-matched digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
