package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// labelPattern matches "Total Amount (USD)" / "Total Amount (CAD)". Extracted PDF
// text often splits or upper-cases words, so spacing and letter case are relaxed.
// The word boundary keeps "Subtotal Amount" out.
var labelPattern = regexp.MustCompile(`(?i)\btotal\s+amount\s*\(\s*(usd|cad)\s*\)`)

// valuePattern must match right after a label:
//
//	[ws] [":"] [ws] ["$"] [ws] (d{1,3}(,ddd)+ | d+) ["." dd]
var valuePattern = regexp.MustCompile(`^\s*:?\s*\$?\s*(\d{1,3}(?:,\d{3})+|\d+)(\.\d{2})?`)

// snippetLen bounds how much text after a label is quoted in error messages.
const snippetLen = 24

type labeledValue struct {
	currency models.Currency
	value    decimal.Decimal
	err      error
}

// ParseAmount finds the single labeled total in text.
//
// Behavior:
//   - No label at all → models.ErrAmountNotFound.
//   - Both a USD and a CAD label → models.ErrAmbiguousAmount (never picks one).
//   - More than one label with a valid value → models.ErrAmbiguousAmount.
//   - Labels present but none followed by a valid value → models.ErrMalformedAmount.
func ParseAmount(text string) (models.RawAmount, error) {
	locs := labelPattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return models.RawAmount{}, models.ErrAmountNotFound
	}

	found := make([]labeledValue, 0, len(locs))
	seen := map[models.Currency]bool{}
	for _, loc := range locs {
		cur := models.Currency(strings.ToUpper(text[loc[2]:loc[3]]))
		seen[cur] = true
		v, err := parseValue(text[loc[1]:])
		found = append(found, labeledValue{currency: cur, value: v, err: err})
	}

	if seen[models.USD] && seen[models.CAD] {
		return models.RawAmount{}, fmt.Errorf("%w: document has both USD and CAD totals", models.ErrAmbiguousAmount)
	}

	var valid []labeledValue
	for _, lv := range found {
		if lv.err == nil {
			valid = append(valid, lv)
		}
	}

	switch len(valid) {
	case 0:
		return models.RawAmount{}, found[0].err
	case 1:
		return models.RawAmount{Value: valid[0].value, Currency: valid[0].currency}, nil
	default:
		return models.RawAmount{}, fmt.Errorf("%w: %d %s totals found", models.ErrAmbiguousAmount, len(valid), valid[0].currency)
	}
}

// parseValue reads the numeric token at the start of rest.
func parseValue(rest string) (decimal.Decimal, error) {
	m := valuePattern.FindStringSubmatchIndex(rest)
	if m == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: no number after label (got %q)", models.ErrMalformedAmount, snippet(rest))
	}

	// The token has to end where the grammar ends: "100.5", "100.555" or
	// "1234,56" are not amounts this parser is willing to guess at.
	tail := rest[m[1]:]
	if len(tail) > 0 && isDigit(tail[0]) {
		return decimal.Decimal{}, fmt.Errorf("%w: unexpected digits after amount (got %q)", models.ErrMalformedAmount, snippet(rest))
	}
	if len(tail) > 1 && (tail[0] == '.' || tail[0] == ',') && isDigit(tail[1]) {
		return decimal.Decimal{}, fmt.Errorf("%w: unsupported number format (got %q)", models.ErrMalformedAmount, snippet(rest))
	}

	num := rest[m[2]:m[3]]
	if m[4] >= 0 {
		num += rest[m[4]:m[5]]
	}
	num = strings.ReplaceAll(num, ",", "")

	v, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", models.ErrMalformedAmount, err)
	}
	return v, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > snippetLen {
		s = s[:snippetLen]
	}
	return s
}
