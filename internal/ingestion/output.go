package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// datasetRow is one line of the output table. USD and rate stay empty for CAD documents.
type datasetRow struct {
	Date       string `csv:"date"`
	Occurrence int    `csv:"occurrence"`
	USD        string `csv:"USD"`
	CAD        string `csv:"CAD"`
	Amount     string `csv:"amount"`
	Rate       string `csv:"rate"`
}

type skippedRow struct {
	File      string `csv:"file"`
	Kind      string `csv:"kind"`
	Retryable string `csv:"retryable"`
	Message   string `csv:"message"`
}

// WriteDatasetCSV writes ds as "date,occurrence,USD,CAD,amount,rate".
// Amounts are written with two decimals, rates as published.
func WriteDatasetCSV(w io.Writer, ds models.Dataset) error {
	rows := make([]*datasetRow, 0, len(ds))
	for _, rec := range ds {
		row := &datasetRow{
			Date:       rec.Date.Format(models.DateLayout),
			Occurrence: rec.Occurrence,
			CAD:        rec.CAD.StringFixed(2),
			Amount:     rec.Amount.StringFixed(2),
		}
		if rec.USD.Valid {
			row.USD = rec.USD.Decimal.StringFixed(2)
		}
		if rec.Rate.Valid {
			row.Rate = rec.Rate.Decimal.String()
		}
		rows = append(rows, row)
	}
	return gocsv.Marshal(rows, w)
}

// WriteSkippedCSV writes the skip report as "file,kind,retryable,message".
func WriteSkippedCSV(w io.Writer, skipped []models.SkippedFile) error {
	rows := make([]*skippedRow, 0, len(skipped))
	for _, s := range skipped {
		rows = append(rows, &skippedRow{
			File:      s.Filename,
			Kind:      string(s.Kind),
			Retryable: strconv.FormatBool(s.Retryable),
			Message:   s.Message,
		})
	}
	return gocsv.Marshal(rows, w)
}

// Outputs names where a run's tables are written.
//
// Fields:
//   - DatasetPath: output table; "-" writes to stdout.
//   - SkippedPath: skip report; written only when files were skipped. Empty disables it.
type Outputs struct {
	DatasetPath string
	SkippedPath string
}

// DefaultOutputs places both tables next to the input documents.
func DefaultOutputs(dir, datasetName, skippedName string) Outputs {
	o := Outputs{DatasetPath: filepath.Join(dir, datasetName)}
	if skippedName != "" {
		o.SkippedPath = filepath.Join(dir, skippedName)
	}
	return o
}

// WriteOutputs writes the dataset and, when non-empty, the skip report.
func WriteOutputs(res *Result, out Outputs) error {
	if err := writeFileWith(out.DatasetPath, func(w io.Writer) error { return WriteDatasetCSV(w, res.Dataset) }); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if out.SkippedPath == "" || !res.HasSkipped() {
		return nil
	}
	if err := writeFileWith(out.SkippedPath, func(w io.Writer) error { return WriteSkippedCSV(w, res.Skipped) }); err != nil {
		return fmt.Errorf("write skipped report: %w", err)
	}
	return nil
}

func writeFileWith(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
