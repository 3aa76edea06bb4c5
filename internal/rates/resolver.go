package rates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/logger"
)

// DefaultWindow is how many calendar days before the requested date are searched.
const DefaultWindow = 7

// Options tunes the fallback search.
//
// Fields:
//   - Window: number of prior calendar days to try after the requested one (default 7).
//   - SkipClosedDays: do not query days on which the publisher never publishes.
//     Skipped days still count against Window.
type Options struct {
	Window         int
	SkipClosedDays bool
}

// Resolver returns the USD→CAD rate for a date, backed by a Cache and a Source.
type Resolver struct {
	cache  *Cache
	source Source
	opts   Options
}

// NewResolver builds a resolver. The cache is passed in so callers decide its
// scope; a nil cache gets a fresh one.
func NewResolver(cache *Cache, source Source, opts Options) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	return &Resolver{cache: cache, source: source, opts: opts}
}

// Resolve returns the rate for date.
//
// Behavior:
//   - Cache hit on the exact date: no source call.
//   - Miss: query date, then walk back one day at a time up to Window days until
//     a rate is found. The result is cached under the requested date, so the walk
//     never repeats for that date.
//   - Source unreachable: *models.RateSourceUnavailableError, not cached.
//   - Nothing within the window: *models.RateUnavailableError, cached for the date.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) (models.ExchangeRate, error) {
	day := models.Day(date)
	return r.cache.GetOrLoad(day, func() (models.ExchangeRate, error) {
		return r.search(ctx, day)
	})
}

// previous is the next day to query after d: the prior calendar day, or the
// prior publication day when closed days are skipped.
func (r *Resolver) previous(d time.Time) time.Time {
	if r.opts.SkipClosedDays {
		return PreviousPublicationDay(d)
	}
	return d.AddDate(0, 0, -1)
}

// Window returns the configured fallback window in days.
func (r *Resolver) Window() int { return r.opts.Window }

func (r *Resolver) search(ctx context.Context, day time.Time) (models.ExchangeRate, error) {
	oldest := day.AddDate(0, 0, -r.opts.Window)

	start := day
	if r.opts.SkipClosedDays && !IsPublicationDay(day) {
		start = PreviousPublicationDay(day)
	}

	for d := start; !d.Before(oldest); d = r.previous(d) {
		if err := ctx.Err(); err != nil {
			return models.ExchangeRate{}, err
		}

		q, err := r.source.Rate(ctx, d, models.USD, models.CAD)
		switch {
		case err == nil:
		case errors.Is(err, ErrNoData):
			logger.L().Debug().Str("date", d.Format(models.DateLayout)).Msg("no rate published, falling back")
			continue
		case ctx.Err() != nil:
			return models.ExchangeRate{}, ctx.Err()
		default:
			return models.ExchangeRate{}, &models.RateSourceUnavailableError{
				Date: day,
				Err:  fmt.Errorf("query %s: %w", d.Format(models.DateLayout), err),
			}
		}

		effective := models.Day(q.Date)
		if q.Date.IsZero() {
			effective = d
		}
		// Some publishers answer a closed day with the previous publication.
		// Anything outside [oldest, day] is not an answer for this date.
		if effective.After(day) || effective.Before(oldest) {
			continue
		}
		if !q.Rate.IsPositive() {
			return models.ExchangeRate{}, &models.RateSourceUnavailableError{
				Date: day,
				Err:  fmt.Errorf("query %s: non-positive rate %s", d.Format(models.DateLayout), q.Rate),
			}
		}

		if effective.Before(day) {
			logger.L().Info().
				Str("date", day.Format(models.DateLayout)).
				Str("effective_date", effective.Format(models.DateLayout)).
				Msg("rate resolved from earlier publication")
		}
		return models.ExchangeRate{
			Date:          day,
			EffectiveDate: effective,
			Base:          models.USD,
			Quote:         models.CAD,
			Rate:          q.Rate,
		}, nil
	}

	return models.ExchangeRate{}, &models.RateUnavailableError{Date: day, Window: r.opts.Window}
}
