package dataset

import (
	"sort"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// Item is the outcome of processing one document: either a Record or an Err.
type Item struct {
	Filename string
	Identity models.FileIdentity
	Record   models.Record
	Err      error
}

// Assemble orders the successful records into a dataset and reports the failures.
//
// Records are grouped by date. Within a date they are ordered by filename rank
// (a file without "(n)" ranks 1, otherwise n) and then by filename, and get
// occurrence 1..k with no gaps, whatever hints were present. Skipped files are
// ordered by filename.
func Assemble(items []Item) (models.Dataset, []models.SkippedFile) {
	type ranked struct {
		rec  models.Record
		rank int
	}

	var ok []ranked
	var skipped []models.SkippedFile
	for _, it := range items {
		if it.Err != nil {
			skipped = append(skipped, models.SkippedFile{
				Filename:  it.Filename,
				Kind:      models.KindOf(it.Err),
				Message:   it.Err.Error(),
				Retryable: models.IsRetryable(it.Err),
			})
			continue
		}
		rec := it.Record
		if rec.Filename == "" {
			rec.Filename = it.Filename
		}
		ok = append(ok, ranked{rec: rec, rank: it.Identity.Rank()})
	}

	sort.SliceStable(ok, func(i, j int) bool {
		a, b := ok[i], ok[j]
		if !a.rec.Date.Equal(b.rec.Date) {
			return a.rec.Date.Before(b.rec.Date)
		}
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.rec.Filename < b.rec.Filename
	})

	ds := make(models.Dataset, 0, len(ok))
	occurrence := 0
	for i, r := range ok {
		if i == 0 || !r.rec.Date.Equal(ok[i-1].rec.Date) {
			occurrence = 0
		}
		occurrence++
		r.rec.Occurrence = occurrence
		ds = append(ds, r.rec)
	}

	sort.SliceStable(skipped, func(i, j int) bool { return skipped[i].Filename < skipped[j].Filename })
	return ds, skipped
}
