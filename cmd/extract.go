package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/guttosm/fxpulse/config"
	"github.com/guttosm/fxpulse/internal/app"
	"github.com/guttosm/fxpulse/internal/dataset"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/extraction"
	"github.com/guttosm/fxpulse/internal/ingestion"
	"github.com/guttosm/fxpulse/internal/logger"
	"github.com/guttosm/fxpulse/internal/rates"
	"github.com/guttosm/fxpulse/internal/storage"
)

// Exit statuses of extract mode.
const (
	exitOK          = 0
	exitFailure     = 1
	exitSkipped     = 2
	exitInterrupted = 130
)

// extractOptions carries the extract-mode flags.
type extractOptions struct {
	Dir     string
	Out     string // dataset path, "-" for stdout; empty places it next to the documents
	Persist bool
}

// Indirections for unit testing.
var (
	newExtractor  = func() extraction.TextExtractor { return extraction.NewPDFExtractor() }
	newRateSource = func(cfg config.RatesConfig) rates.Source {
		return rates.NewFrankfurterSource(rates.FrankfurterConfig{
			BaseURL:           cfg.BaseURL,
			Timeout:           cfg.Timeout,
			MaxRetries:        cfg.MaxRetries,
			RequestsPerSecond: cfg.RequestsPerSecond,
		})
	}
	openStore = func(cfg config.Config) (*sql.DB, error) {
		db, err := app.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}
		if err := storage.Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}
	persistRun = ingestion.Persist
)

// runExtract processes opts.Dir, writes the output tables and optionally stores the run.
// It returns the process exit status.
func runExtract(ctx context.Context, cfg config.Config, opts extractOptions) int {
	resolver := rates.NewResolver(rates.NewCache(), newRateSource(cfg.Rates), rates.Options{
		Window:         cfg.Rates.FallbackDays,
		SkipClosedDays: cfg.Rates.SkipClosedDays,
	})

	res, err := ingestion.ProcessDirectory(ctx, opts.Dir, ingestion.Deps{
		Extractor: newExtractor(),
		Rates:     resolver.Resolve,
	})
	interrupted := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
	if err != nil && !interrupted {
		logger.L().Error().Err(err).Str("dir", opts.Dir).Msg("extraction failed")
		return exitFailure
	}

	out := ingestion.DefaultOutputs(opts.Dir, cfg.Output.Filename, cfg.Output.SkippedFilename)
	if opts.Out != "" {
		out.DatasetPath = opts.Out
	}
	if err := ingestion.WriteOutputs(res, out); err != nil {
		logger.L().Error().Err(err).Msg("write outputs failed")
		return exitFailure
	}
	logSummary(res)

	if interrupted {
		logger.L().Warn().Int("records", len(res.Dataset)).Msg("extraction interrupted, partial output written")
		return exitInterrupted
	}

	if opts.Persist {
		db, err := openStore(cfg)
		if err != nil {
			logger.L().Error().Err(err).Msg("db connect error")
			return exitFailure
		}
		defer func() { _ = db.Close() }()

		if _, err := persistRun(ctx, db, res); err != nil {
			logger.L().Error().Err(err).Msg("persist failed")
			return exitFailure
		}
	}

	if res.HasSkipped() {
		return exitSkipped
	}
	return exitOK
}

func logSummary(res *ingestion.Result) {
	sum := dataset.Summarize(res.Dataset)

	ev := logger.L().Info().
		Int("records", sum.Records).
		Int("skipped", len(res.Skipped)).
		Str("total_cad", dataset.Display(sum.TotalCAD, models.CAD))
	for _, c := range []models.Currency{models.USD, models.CAD} {
		if v, ok := sum.ByCurrency[c]; ok {
			ev = ev.Str("original_"+string(c), dataset.Display(v, c))
		}
	}
	ev.Msg("summary")

	for _, d := range sum.Daily {
		logger.L().Debug().
			Str("date", d.Date.Format(models.DateLayout)).
			Int("records", d.Records).
			Str("total_cad", dataset.Display(d.Amount, models.CAD)).
			Msg("daily total")
	}
}
