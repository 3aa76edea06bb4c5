package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts one unit of Base into Quote.
//
// Date is the date that was asked for and is the cache key. EffectiveDate is the
// date the publisher actually quoted, which is earlier than Date when the lookup
// had to fall back over a weekend or holiday.
type ExchangeRate struct {
	Date          time.Time
	EffectiveDate time.Time
	Base          Currency
	Quote         Currency
	Rate          decimal.Decimal
}

// FellBack reports whether the rate was published on an earlier day than requested.
func (r ExchangeRate) FellBack() bool {
	return r.EffectiveDate.Before(r.Date)
}
