package dataset

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// Summarize totals a dataset by original currency and by date.
// Daily totals follow the dataset's date order.
func Summarize(ds models.Dataset) models.Summary {
	s := models.Summary{
		Records: len(ds),
		ByCurrency: map[models.Currency]decimal.Decimal{
			models.USD: decimal.Zero,
			models.CAD: decimal.Zero,
		},
		TotalCAD: decimal.Zero,
	}

	for _, r := range ds {
		if r.USD.Valid {
			s.ByCurrency[models.USD] = s.ByCurrency[models.USD].Add(r.USD.Decimal)
		} else {
			s.ByCurrency[models.CAD] = s.ByCurrency[models.CAD].Add(r.CAD)
		}
		s.TotalCAD = s.TotalCAD.Add(r.Amount)

		n := len(s.Daily)
		if n == 0 || !s.Daily[n-1].Date.Equal(r.Date) {
			s.Daily = append(s.Daily, models.DailyTotal{Date: r.Date, Amount: decimal.Zero})
			n++
		}
		s.Daily[n-1].Records++
		s.Daily[n-1].Amount = s.Daily[n-1].Amount.Add(r.Amount)
	}
	return s
}

// Display formats a decimal amount with the currency's symbol and grouping, e.g. "$1,234.50".
func Display(amount decimal.Decimal, c models.Currency) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return money.New(cents, string(c)).Display()
}
