package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/fxpulse/internal/dataset"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/extraction"
	"github.com/guttosm/fxpulse/internal/logger"
)

const pdfExt = ".pdf"

// Deps are the collaborators of a run.
//
// Fields:
//   - Extractor: turns a document into plain text.
//   - Rates: USD→CAD rate lookup, normally (*rates.Resolver).Resolve.
type Deps struct {
	Extractor extraction.TextExtractor
	Rates     dataset.RateLookup
}

// Result is what a run produced.
type Result struct {
	Dir        string
	Dataset    models.Dataset
	Skipped    []models.SkippedFile
	Processed  int
	StartedAt  time.Time
	FinishedAt time.Time
}

// HasSkipped reports whether any document was left out of the dataset.
func (r *Result) HasSkipped() bool { return len(r.Skipped) > 0 }

// ProcessDirectory extracts one amount per PDF in dir and builds the dataset.
//
//   - dir: folder containing the documents; only "*.pdf" files are considered.
//
// Behavior:
//   - Files are processed one at a time, in lexical filename order.
//   - A failing file is reported in Result.Skipped and never stops the run.
//   - On cancellation the file in flight is dropped and the records built so far
//     are returned together with ctx.Err().
//
// Returns:
//   - *Result: the assembled dataset and skip list (non-nil unless dir cannot be read).
//   - error: a structural failure (dir unreadable) or the context error.
func ProcessDirectory(ctx context.Context, dir string, deps Deps) (*Result, error) {
	if deps.Extractor == nil || deps.Rates == nil {
		return nil, errors.New("ingestion: extractor and rate lookup are required")
	}

	files, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}

	res := &Result{Dir: dir, StartedAt: time.Now()}
	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("extraction start")

	var items []dataset.Item
	var runErr error
	for idx, name := range files {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		log := logger.L().With().Str("file", name).Logger()
		fctx := logger.WithContext(ctx, &log)
		start := time.Now()
		log.Info().Int("idx", idx+1).Int("total", len(files)).Msg("file start")

		item := processFile(fctx, filepath.Join(dir, name), name, deps)
		if item.Err != nil && ctx.Err() != nil {
			// Interrupted mid-file: neither a record nor a skip.
			log.Warn().Err(item.Err).Msg("file interrupted")
			runErr = ctx.Err()
			break
		}

		res.Processed++
		items = append(items, item)
		if item.Err != nil {
			log.Warn().
				Str("kind", string(models.KindOf(item.Err))).
				Bool("retryable", models.IsRetryable(item.Err)).
				Dur("elapsed", time.Since(start)).
				Err(item.Err).
				Msg("file skipped")
			continue
		}
		logRecord(&log, item.Record, time.Since(start))
	}

	res.Dataset, res.Skipped = dataset.Assemble(items)
	res.FinishedAt = time.Now()

	logger.L().Info().
		Int("processed", res.Processed).
		Int("records", len(res.Dataset)).
		Int("skipped", len(res.Skipped)).
		Dur("elapsed", res.FinishedAt.Sub(res.StartedAt)).
		Msg("extraction done")

	return res, runErr
}

// processFile runs one document through the pipeline. Every failure is
// captured in the returned item.
func processFile(ctx context.Context, path, name string, deps Deps) dataset.Item {
	item := dataset.Item{Filename: name}

	id, err := extraction.ResolveFilename(name)
	if err != nil {
		item.Err = err
		return item
	}
	item.Identity = id

	text, err := deps.Extractor.ExtractText(ctx, path)
	if err != nil {
		item.Err = fmt.Errorf("%s: %w", id, err)
		return item
	}

	amount, err := extraction.ParseAmount(text)
	if err != nil {
		item.Err = fmt.Errorf("%s: %w", id, err)
		return item
	}
	logger.FromContext(ctx).Debug().
		Str("currency", string(amount.Currency)).
		Str("value", amount.Value.StringFixed(2)).
		Msg("amount found")

	rec, err := dataset.BuildRecord(ctx, id, amount, deps.Rates)
	if err != nil {
		item.Err = err
		return item
	}
	item.Record = rec
	return item
}

func logRecord(log *zerolog.Logger, rec models.Record, elapsed time.Duration) {
	ev := log.Info().Str("date", rec.Date.Format(models.DateLayout)).Str("cad", rec.CAD.StringFixed(2))
	if rec.USD.Valid {
		ev = ev.Str("usd", rec.USD.Decimal.StringFixed(2)).Str("rate", rec.Rate.Decimal.String())
		if rec.RateDate != nil && !rec.RateDate.Equal(rec.Date) {
			ev = ev.Str("rate_date", rec.RateDate.Format(models.DateLayout))
		}
	}
	ev.Dur("elapsed", elapsed).Msg("file done")
}

// listDocuments returns the PDF filenames in dir, sorted lexically.
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), pdfExt) {
			logger.L().Debug().Str("file", e.Name()).Msg("ignored, not a pdf")
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
