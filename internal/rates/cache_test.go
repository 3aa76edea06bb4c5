package rates

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

func TestCache_GetOrLoad_StoresSuccessOnly(t *testing.T) {
	c := NewCache()
	d := day(2025, 1, 15)
	loads := 0

	boom := errors.New("boom")
	if _, err := c.GetOrLoad(d, func() (models.ExchangeRate, error) {
		loads++
		return models.ExchangeRate{}, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if _, ok := c.Get(d); ok {
		t.Fatalf("failed load must not be cached")
	}

	want := models.ExchangeRate{Date: d, EffectiveDate: d, Base: models.USD, Quote: models.CAD, Rate: decimal.RequireFromString("1.35")}
	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad(d, func() (models.ExchangeRate, error) {
			loads++
			return want, nil
		})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !got.Rate.Equal(want.Rate) {
			t.Fatalf("rate=%s want %s", got.Rate, want.Rate)
		}
	}
	if loads != 2 {
		t.Fatalf("expected 2 loads (one failed, one stored), got %d", loads)
	}
	if c.Len() != 1 {
		t.Fatalf("len=%d want 1", c.Len())
	}
}

func TestCache_KeyIgnoresTimeOfDay(t *testing.T) {
	c := NewCache()
	d := day(2025, 1, 15)
	_, _ = c.GetOrLoad(d, func() (models.ExchangeRate, error) {
		return models.ExchangeRate{Date: d, Rate: decimal.NewFromInt(1)}, nil
	})
	if _, ok := c.Get(d.Add(13 * time.Hour)); !ok {
		t.Fatalf("expected hit for the same calendar day")
	}
}

func TestCache_GetOrLoad_RemembersRateUnavailable(t *testing.T) {
	c := NewCache()
	d := day(2025, 1, 15)
	loads := 0
	load := func() (models.ExchangeRate, error) {
		loads++
		return models.ExchangeRate{}, &models.RateUnavailableError{Date: d, Window: 7}
	}

	for i := 0; i < 3; i++ {
		if _, err := c.GetOrLoad(d, load); !errors.Is(err, models.ErrRateUnavailable) {
			t.Fatalf("call %d: expected ErrRateUnavailable, got %v", i+1, err)
		}
	}
	if loads != 1 {
		t.Fatalf("expected a single load, got %d", loads)
	}
	if _, ok := c.Get(d); ok || c.Len() != 0 {
		t.Fatalf("a missing rate must not appear as a cached rate")
	}
}
