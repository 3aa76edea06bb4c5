package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

type stubRepo struct {
	ds   models.Dataset
	run  *models.Run
	err  error
	from *time.Time
	to   *time.Time
}

func (s *stubRepo) SaveRun(context.Context, models.Run, models.Dataset) error { return nil }
func (s *stubRepo) ListRecords(_ context.Context, from, to *time.Time) (models.Dataset, error) {
	s.from, s.to = from, to
	return s.ds, s.err
}
func (s *stubRepo) LatestRun(context.Context) (*models.Run, error) { return s.run, s.err }

func TestRecordsService_TableDriven(t *testing.T) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	ds := models.Dataset{
		{Date: day, Occurrence: 1, CAD: decimal.RequireFromString("10"), Amount: decimal.RequireFromString("10")},
		{Date: day, Occurrence: 2, CAD: decimal.RequireFromString("5.50"), Amount: decimal.RequireFromString("5.50")},
	}

	cases := []struct {
		name    string
		repo    *stubRepo
		wantErr bool
		total   string
	}{
		{name: "ok", repo: &stubRepo{ds: ds}, total: "15.5"},
		{name: "empty", repo: &stubRepo{}, total: "0"},
		{name: "repo error", repo: &stubRepo{err: errors.New("db down")}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewRecordsService(tc.repo)

			got, err := svc.ListRecords(context.Background(), &day, nil)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ListRecords err=%v wantErr=%v", err, tc.wantErr)
			}
			if tc.repo.from == nil || !tc.repo.from.Equal(day) || tc.repo.to != nil {
				t.Fatalf("bounds not forwarded")
			}
			if !tc.wantErr && len(got) != len(tc.repo.ds) {
				t.Fatalf("len=%d", len(got))
			}

			sum, err := svc.Summary(context.Background(), nil, nil)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Summary err=%v wantErr=%v", err, tc.wantErr)
			}
			if !tc.wantErr && sum.TotalCAD.String() != tc.total {
				t.Fatalf("total=%s want %s", sum.TotalCAD, tc.total)
			}
		})
	}
}

func TestRecordsService_LatestRun(t *testing.T) {
	svc := NewRecordsService(&stubRepo{run: &models.Run{ID: "r1"}})
	run, err := svc.LatestRun(context.Background())
	if err != nil || run == nil || run.ID != "r1" {
		t.Fatalf("run=%v err=%v", run, err)
	}
}
