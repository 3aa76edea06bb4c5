package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-4217 code. Only USD and CAD are supported.
type Currency string

const (
	USD Currency = "USD"
	CAD Currency = "CAD"
)

// ParseCurrency normalizes s and rejects anything other than USD or CAD.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case USD, CAD:
		return c, nil
	default:
		return "", fmt.Errorf("unsupported currency %q", s)
	}
}

// RawAmount is the labeled value found in a document, before any conversion.
//
// Fields:
//   - Value: non-negative amount as printed in the document.
//   - Currency: the currency named by the label that matched.
type RawAmount struct {
	Value    decimal.Decimal
	Currency Currency
}

func (a RawAmount) String() string {
	return a.Value.StringFixed(2) + " " + string(a.Currency)
}
