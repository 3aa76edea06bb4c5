package ingestion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/logger"
	"github.com/guttosm/fxpulse/internal/storage"
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.RecordsRepository {
	return storage.NewRecordsRepository(db)
}

// Persist stores the run and its dataset and returns the generated run id.
func Persist(ctx context.Context, db *sql.DB, res *Result) (string, error) {
	repo := repoCtor(db)

	run := models.Run{
		ID:         uuid.NewString(),
		Dir:        res.Dir,
		StartedAt:  res.StartedAt.UTC(),
		FinishedAt: res.FinishedAt.UTC(),
		Processed:  res.Processed,
		Recorded:   len(res.Dataset),
		Skipped:    res.Skipped,
	}
	if err := repo.SaveRun(ctx, run, res.Dataset); err != nil {
		return "", fmt.Errorf("persist run %s: %w", run.ID, err)
	}

	logger.L().Info().Str("run_id", run.ID).Int("records", run.Recorded).Msg("run persisted")
	return run.ID, nil
}
