package dto

import (
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// DailyTotalResponse is the CAD total of one date.
type DailyTotalResponse struct {
	Date    string `json:"date" example:"2025-01-15"`
	Records int    `json:"records" example:"2"`
	Amount  string `json:"amount" example:"193.25"`
}

// SummaryResponse is returned by GET /api/v1/summary.
type SummaryResponse struct {
	Records    int                  `json:"records" example:"3"`
	ByCurrency map[string]string    `json:"by_currency"`
	TotalCAD   string               `json:"total_cad" example:"2193.25"`
	Display    string               `json:"display" example:"$2,193.25"`
	Daily      []DailyTotalResponse `json:"daily"`
}

// NewSummaryResponse maps a summary; display is the formatted CAD total.
func NewSummaryResponse(s models.Summary, display string) SummaryResponse {
	resp := SummaryResponse{
		Records:    s.Records,
		ByCurrency: make(map[string]string, len(s.ByCurrency)),
		TotalCAD:   s.TotalCAD.StringFixed(2),
		Display:    display,
		Daily:      make([]DailyTotalResponse, 0, len(s.Daily)),
	}
	for c, v := range s.ByCurrency {
		resp.ByCurrency[string(c)] = v.StringFixed(2)
	}
	for _, d := range s.Daily {
		resp.Daily = append(resp.Daily, DailyTotalResponse{
			Date:    d.Date.Format(models.DateLayout),
			Records: d.Records,
			Amount:  d.Amount.StringFixed(2),
		})
	}
	return resp
}

// SkippedFileResponse is one entry of a run's skip report.
type SkippedFileResponse struct {
	Filename  string `json:"filename" example:"invoice.pdf"`
	Kind      string `json:"kind" example:"InvalidFilenameError"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// RunResponse is returned by GET /api/v1/runs/latest.
type RunResponse struct {
	ID         string                `json:"id" example:"7b0f3a52-5d55-4a59-9f0f-2d9b1f0c6a11"`
	Dir        string                `json:"dir" example:"/data/invoices"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
	Processed  int                   `json:"processed" example:"4"`
	Recorded   int                   `json:"recorded" example:"3"`
	Skipped    []SkippedFileResponse `json:"skipped"`
}

// NewRunResponse maps a stored run.
func NewRunResponse(run models.Run) RunResponse {
	resp := RunResponse{
		ID:         run.ID,
		Dir:        run.Dir,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Processed:  run.Processed,
		Recorded:   run.Recorded,
		Skipped:    make([]SkippedFileResponse, 0, len(run.Skipped)),
	}
	for _, s := range run.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedFileResponse{
			Filename:  s.Filename,
			Kind:      string(s.Kind),
			Message:   s.Message,
			Retryable: s.Retryable,
		})
	}
	return resp
}
