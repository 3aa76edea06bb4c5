package rates

import (
	"testing"
	"time"
)

func TestIsPublicationDay_WeekendsAndClosingDays(t *testing.T) {
	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"wednesday", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"saturday", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), false},
		{"sunday", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), false},
		{"new year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"labour day", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"christmas", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), false},
		{"boxing day", time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC), false},
		{"good friday", time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC), false},
		{"easter monday", time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC), false},
		{"day after easter monday", time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC), true},
		{"time of day ignored", time.Date(2025, 4, 18, 15, 30, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPublicationDay(tc.day); got != tc.want {
				t.Fatalf("IsPublicationDay(%s)=%v want %v", tc.day.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestPreviousPublicationDay(t *testing.T) {
	// Tuesday after Easter Monday -> Thursday before Good Friday.
	got := PreviousPublicationDay(time.Date(2025, 4, 22, 9, 0, 0, 0, time.UTC))
	want := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestEasterSunday(t *testing.T) {
	for year, want := range map[int]string{2024: "2024-03-31", 2025: "2025-04-20", 2026: "2026-04-05"} {
		if got := easterSunday(year).Format("2006-01-02"); got != want {
			t.Fatalf("easter %d: got %s want %s", year, got, want)
		}
	}
}
