package dto

import (
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// RecordResponse is one dataset row as returned by GET /api/v1/records.
//
// Fields match the output table; USD, rate and rate_date are omitted for CAD documents.
type RecordResponse struct {
	Date       string  `json:"date" example:"2025-01-15"`
	Occurrence int     `json:"occurrence" example:"1"`
	Filename   string  `json:"filename" example:"2025-01-15.pdf"`
	USD        *string `json:"usd,omitempty" example:"100.00"`
	CAD        string  `json:"cad" example:"143.25"`
	Amount     string  `json:"amount" example:"143.25"`
	Rate       *string `json:"rate,omitempty" example:"1.4325"`
	RateDate   *string `json:"rate_date,omitempty" example:"2025-01-15"`
}

// RecordsResponse wraps a dataset slice with the applied date bounds.
type RecordsResponse struct {
	From    string           `json:"from,omitempty" example:"2025-01-01"`
	To      string           `json:"to,omitempty" example:"2025-01-31"`
	Count   int              `json:"count" example:"2"`
	Records []RecordResponse `json:"records"`
}

// NewRecordResponse maps a domain record to its API shape.
func NewRecordResponse(rec models.Record) RecordResponse {
	out := RecordResponse{
		Date:       rec.Date.Format(models.DateLayout),
		Occurrence: rec.Occurrence,
		Filename:   rec.Filename,
		CAD:        rec.CAD.StringFixed(2),
		Amount:     rec.Amount.StringFixed(2),
	}
	if rec.USD.Valid {
		usd := rec.USD.Decimal.StringFixed(2)
		out.USD = &usd
	}
	if rec.Rate.Valid {
		rate := rec.Rate.Decimal.String()
		out.Rate = &rate
	}
	if rec.RateDate != nil {
		d := rec.RateDate.Format(models.DateLayout)
		out.RateDate = &d
	}
	return out
}

// NewRecordsResponse maps a dataset; nil bounds are left out.
func NewRecordsResponse(ds models.Dataset, from, to *time.Time) RecordsResponse {
	resp := RecordsResponse{Count: len(ds), Records: make([]RecordResponse, 0, len(ds))}
	if from != nil {
		resp.From = from.Format(models.DateLayout)
	}
	if to != nil {
		resp.To = to.Format(models.DateLayout)
	}
	for _, rec := range ds {
		resp.Records = append(resp.Records, NewRecordResponse(rec))
	}
	return resp
}
