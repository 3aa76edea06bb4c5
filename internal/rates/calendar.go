package rates

import "time"

// fixedClosingDays are the month-day pairs on which no rates are published.
var fixedClosingDays = map[string]struct{}{
	"01-01": {}, // New Year
	"05-01": {}, // Labour Day
	"12-25": {}, // Christmas
	"12-26": {}, // Boxing Day
}

// IsPublicationDay reports whether reference rates are published on d.
// Frankfurter serves the ECB reference rates, which are not published on
// weekends nor on TARGET2 closing days.
func IsPublicationDay(d time.Time) bool {
	// Weekend
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}

	if _, ok := fixedClosingDays[d.Format("01-02")]; ok {
		return false
	}

	// Movable closing days (computed from Easter)
	easter := easterSunday(d.Year())
	goodFriday := easter.AddDate(0, 0, -2)
	easterMonday := easter.AddDate(0, 0, 1)

	day := truncateToDate(d)
	if day.Equal(goodFriday) || day.Equal(easterMonday) {
		return false
	}
	return true
}

// PreviousPublicationDay returns the closest publication day strictly before d.
func PreviousPublicationDay(d time.Time) time.Time {
	p := truncateToDate(d).AddDate(0, 0, -1)
	for !IsPublicationDay(p) {
		p = p.AddDate(0, 0, -1)
	}
	return p
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// easterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
