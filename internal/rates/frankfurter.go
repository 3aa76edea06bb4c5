package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/logger"
)

// DefaultFrankfurterURL is the public Frankfurter API (ECB reference rates, no key required).
const DefaultFrankfurterURL = "https://api.frankfurter.app"

// FrankfurterConfig configures the HTTP rate source.
//
// Fields:
//   - BaseURL: API root, e.g. "https://api.frankfurter.app".
//   - Timeout: per-request timeout.
//   - MaxRetries: extra attempts after a transient failure (429, 5xx, transport error, malformed body).
//   - RequestsPerSecond: outbound pacing; <= 0 disables pacing.
type FrankfurterConfig struct {
	BaseURL           string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
}

// FrankfurterSource implements Source against the Frankfurter API:
//
//	GET {base}/{YYYY-MM-DD}?from=USD&to=CAD
//	{"amount":1.0,"base":"USD","date":"2025-01-15","rates":{"CAD":1.4325}}
type FrankfurterSource struct {
	baseURL    string
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries uint64
	baseDelay  time.Duration
}

type frankfurterResponse struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// NewFrankfurterSource builds the source, filling zero-valued settings with defaults.
func NewFrankfurterSource(cfg FrankfurterConfig) *FrankfurterSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultFrankfurterURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &FrankfurterSource{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		client:     &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		maxRetries: uint64(cfg.MaxRetries),
		baseDelay:  500 * time.Millisecond,
	}
}

// Rate fetches the quote for date, retrying transient failures with exponential backoff.
func (s *FrankfurterSource) Rate(ctx context.Context, date time.Time, base, quote models.Currency) (Quote, error) {
	var out Quote
	attempt := 0

	b := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.baseDelay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		q, err := s.fetch(ctx, date, base, quote)
		if err != nil {
			logger.L().Debug().
				Str("date", date.Format(models.DateLayout)).
				Int("attempt", attempt).
				Err(err).
				Msg("rate fetch failed")
			return err
		}
		out = q
		return nil
	})
	if err != nil {
		return Quote{}, err
	}
	return out, nil
}

func (s *FrankfurterSource) fetch(ctx context.Context, date time.Time, base, quote models.Currency) (Quote, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Quote{}, err
	}

	q := url.Values{}
	q.Set("from", string(base))
	q.Set("to", string(quote))
	endpoint := fmt.Sprintf("%s/%s?%s", s.baseURL, date.Format(models.DateLayout), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: build request: %v", ErrUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Quote{}, ctx.Err()
		}
		return Quote{}, retry.RetryableError(fmt.Errorf("%w: %v", ErrUnreachable, err))
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusUnprocessableEntity,
		resp.StatusCode == http.StatusBadRequest:
		return Quote{}, fmt.Errorf("%w: %s (status %d)", ErrNoData, date.Format(models.DateLayout), resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return Quote{}, retry.RetryableError(fmt.Errorf("%w: status %d", ErrUnreachable, resp.StatusCode))
	default:
		return Quote{}, fmt.Errorf("%w: unexpected status %d", ErrUnreachable, resp.StatusCode)
	}

	var body frankfurterResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, retry.RetryableError(fmt.Errorf("%w: decode response: %v", ErrUnreachable, err))
	}

	r, ok := body.Rates[string(quote)]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s missing from response", ErrNoData, quote)
	}
	published, err := time.Parse(models.DateLayout, body.Date)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: invalid date %q in response", ErrUnreachable, body.Date)
	}

	// Rates are quoted for body.Amount units of base; normalize to one unit.
	if body.Amount.IsPositive() && !body.Amount.Equal(decimal.NewFromInt(1)) {
		r = r.Div(body.Amount)
	}
	return Quote{Date: published, Rate: r}, nil
}
