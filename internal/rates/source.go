package rates

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

var (
	// ErrNoData means the source has no rate for the requested day (weekend,
	// holiday, date outside its history). The resolver may fall back.
	ErrNoData = errors.New("no rate published for date")

	// ErrUnreachable means the source failed to answer at all.
	ErrUnreachable = errors.New("rate source unreachable")
)

// Quote is a rate as published by a source, with the day it was published for.
type Quote struct {
	Date time.Time
	Rate decimal.Decimal
}

// Source looks up the historical rate for one currency pair on one day.
//
// Implementations return an error wrapping ErrNoData when the day has no
// publication and one wrapping ErrUnreachable for transport or service failures.
type Source interface {
	Rate(ctx context.Context, date time.Time, base, quote models.Currency) (Quote, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, date time.Time, base, quote models.Currency) (Quote, error)

func (f SourceFunc) Rate(ctx context.Context, date time.Time, base, quote models.Currency) (Quote, error) {
	return f(ctx, date, base, quote)
}
