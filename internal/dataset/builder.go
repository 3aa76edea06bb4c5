package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// RateLookup returns the USD→CAD rate for a calendar date.
// (*rates.Resolver).Resolve satisfies it.
type RateLookup func(ctx context.Context, date time.Time) (models.ExchangeRate, error)

// BuildRecord turns one document's amount into a record.
//
// CAD amounts are copied as is. USD amounts are converted with the rate for
// the identity's date and rounded to cents, half away from zero. Occurrence is
// left at zero; Assemble numbers records once every document is known.
//
// A failed rate lookup yields no record; the returned error names the file
// identity and still wraps the lookup's cause.
func BuildRecord(ctx context.Context, id models.FileIdentity, amount models.RawAmount, lookup RateLookup) (models.Record, error) {
	rec := models.Record{
		Date:     id.Date,
		Filename: id.Filename,
	}

	switch amount.Currency {
	case models.CAD:
		rec.CAD = amount.Value
		rec.Amount = amount.Value
		return rec, nil

	case models.USD:
		rate, err := lookup(ctx, id.Date)
		if err != nil {
			return models.Record{}, fmt.Errorf("%s: %w", id, err)
		}
		cad := Convert(amount.Value, rate.Rate)
		effective := rate.EffectiveDate
		if effective.IsZero() {
			effective = id.Date
		}

		rec.USD = decimal.NewNullDecimal(amount.Value)
		rec.Rate = decimal.NewNullDecimal(rate.Rate)
		rec.RateDate = &effective
		rec.CAD = cad
		rec.Amount = cad
		return rec, nil

	default:
		return models.Record{}, fmt.Errorf("%s: unsupported currency %q", id, amount.Currency)
	}
}

// Convert multiplies usd by rate and rounds the product to two decimals.
func Convert(usd, rate decimal.Decimal) decimal.Decimal {
	return usd.Mul(rate).Round(2)
}
