package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// RecordsRepository defines contract for DB operations.
type RecordsRepository interface {
	SaveRun(ctx context.Context, run models.Run, ds models.Dataset) error
	ListRecords(ctx context.Context, from, to *time.Time) (models.Dataset, error)
	LatestRun(ctx context.Context) (*models.Run, error)
}

type recordsRepository struct {
	db *sql.DB
}

func NewRecordsRepository(db *sql.DB) RecordsRepository {
	return &recordsRepository{db: db}
}

// SaveRun stores a run, its skipped files and its records in a single transaction.
//
// Records for every date present in ds are replaced, so re-running a folder
// overwrites the earlier rows for those dates instead of duplicating them.
func (r *recordsRepository) SaveRun(ctx context.Context, run models.Run, ds models.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO extraction_runs (id, dir, started_at, finished_at, processed, recorded, skipped)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, run.Dir, run.StartedAt, run.FinishedAt, run.Processed, run.Recorded, len(run.Skipped)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}

	for _, s := range run.Skipped {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO skipped_files (run_id, filename, kind, message, retryable)
			VALUES ($1, $2, $3, $4, $5)
		`, run.ID, s.Filename, string(s.Kind), s.Message, s.Retryable); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert skipped file %s: %w", s.Filename, err)
		}
	}

	if len(ds) == 0 {
		return tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE date = ANY($1::date[])`, pq.Array(distinctDates(ds))); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete existing records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"records",
		"date",
		"occurrence",
		"filename",
		"usd",
		"cad",
		"amount",
		"rate",
		"rate_date",
		"run_id",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range ds {
		var rateDate interface{}
		if rec.RateDate != nil {
			rateDate = *rec.RateDate
		}
		if _, err := stmt.ExecContext(ctx,
			rec.Date,
			rec.Occurrence,
			rec.Filename,
			rec.USD,
			rec.CAD,
			rec.Amount,
			rec.Rate,
			rateDate,
			run.ID,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListRecords returns stored records ordered by date and occurrence, optionally bounded by date (inclusive).
func (r *recordsRepository) ListRecords(ctx context.Context, from, to *time.Time) (models.Dataset, error) {
	var conditions []string
	var args []interface{}
	if from != nil {
		args = append(args, *from)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT date, occurrence, filename, usd, cad, amount, rate, rate_date FROM records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date, occurrence"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ds := models.Dataset{}
	for rows.Next() {
		var rec models.Record
		var rateDate sql.NullTime
		if err := rows.Scan(
			&rec.Date,
			&rec.Occurrence,
			&rec.Filename,
			&rec.USD,
			&rec.CAD,
			&rec.Amount,
			&rec.Rate,
			&rateDate,
		); err != nil {
			return nil, err
		}
		rec.Date = models.Day(rec.Date)
		if rateDate.Valid {
			d := models.Day(rateDate.Time)
			rec.RateDate = &d
		}
		ds = append(ds, rec)
	}
	return ds, rows.Err()
}

// LatestRun returns the most recent run with its skipped files, or nil when no run was stored.
func (r *recordsRepository) LatestRun(ctx context.Context) (*models.Run, error) {
	var run models.Run
	var skipped int
	err := r.db.QueryRowContext(ctx, `
		SELECT id, dir, started_at, finished_at, processed, recorded, skipped
		FROM extraction_runs
		ORDER BY finished_at DESC
		LIMIT 1
	`).Scan(&run.ID, &run.Dir, &run.StartedAt, &run.FinishedAt, &run.Processed, &run.Recorded, &skipped)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if skipped == 0 {
		return &run, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT filename, kind, message, retryable
		FROM skipped_files
		WHERE run_id = $1
		ORDER BY filename
	`, run.ID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var s models.SkippedFile
		var kind string
		if err := rows.Scan(&s.Filename, &kind, &s.Message, &s.Retryable); err != nil {
			return nil, err
		}
		s.Kind = models.ErrorKind(kind)
		run.Skipped = append(run.Skipped, s)
	}
	return &run, rows.Err()
}

func distinctDates(ds models.Dataset) []string {
	seen := make(map[string]struct{}, len(ds))
	var out []string
	for _, rec := range ds {
		k := rec.Date.Format(models.DateLayout)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
