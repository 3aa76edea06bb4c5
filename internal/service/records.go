package service

import (
	"context"
	"time"

	"github.com/guttosm/fxpulse/internal/dataset"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/storage"
)

// RecordsService exposes stored extraction results.
type RecordsService interface {
	ListRecords(ctx context.Context, from, to *time.Time) (models.Dataset, error)
	Summary(ctx context.Context, from, to *time.Time) (models.Summary, error)
	LatestRun(ctx context.Context) (*models.Run, error)
}

type recordsService struct {
	repo storage.RecordsRepository
}

func NewRecordsService(repo storage.RecordsRepository) RecordsService {
	return &recordsService{repo: repo}
}

func (s *recordsService) ListRecords(ctx context.Context, from, to *time.Time) (models.Dataset, error) {
	return s.repo.ListRecords(ctx, from, to)
}

// Summary totals the stored records in [from, to].
func (s *recordsService) Summary(ctx context.Context, from, to *time.Time) (models.Summary, error) {
	ds, err := s.repo.ListRecords(ctx, from, to)
	if err != nil {
		return models.Summary{}, err
	}
	return dataset.Summarize(ds), nil
}

func (s *recordsService) LatestRun(ctx context.Context) (*models.Run, error) {
	return s.repo.LatestRun(ctx)
}
