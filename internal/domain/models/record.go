package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one row of the output table, built from a single document.
//
// A record is either CAD-origin (USD and Rate both null) or USD-origin (both set).
// Amount always equals CAD.
//
// Column order in the output table:
//  1. date
//  2. occurrence
//  3. USD
//  4. CAD
//  5. amount
//  6. rate
type Record struct {
	Date       time.Time
	Occurrence int
	Filename   string
	USD        decimal.NullDecimal
	CAD        decimal.Decimal
	Amount     decimal.Decimal
	Rate       decimal.NullDecimal
	RateDate   *time.Time // publication date of Rate, nil for CAD-origin records
}

// OriginalCurrency is the currency the document was labeled in.
func (r Record) OriginalCurrency() Currency {
	if r.USD.Valid {
		return USD
	}
	return CAD
}

// Dataset is the ordered output of a run: date ascending, then occurrence ascending.
type Dataset []Record

// SkippedFile reports a document that did not make it into the dataset.
type SkippedFile struct {
	Filename  string
	Kind      ErrorKind
	Message   string
	Retryable bool
}

// DailyTotal sums the final CAD amounts of one date.
type DailyTotal struct {
	Date    time.Time
	Records int
	Amount  decimal.Decimal
}

// Summary aggregates a dataset for display.
//
// Fields:
//   - Records: number of rows summarized.
//   - ByCurrency: totals of the original amounts, keyed by the document's currency.
//   - Daily: final CAD totals per date, date ascending.
//   - TotalCAD: sum of all final amounts.
type Summary struct {
	Records    int
	ByCurrency map[Currency]decimal.Decimal
	Daily      []DailyTotal
	TotalCAD   decimal.Decimal
}
