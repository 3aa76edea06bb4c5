package models

import (
	"strconv"
	"time"
)

// DateLayout is the calendar date format used in filenames, the rate source and the output table.
const DateLayout = "2006-01-02"

// FileIdentity is what a filename says about its document.
//
// Fields:
//   - Filename: base name the identity was derived from (used as tie-break when ordering).
//   - Date: calendar date at UTC midnight.
//   - SequenceHint: the "(n)" suffix, 0 when absent, otherwise >= 2.
type FileIdentity struct {
	Filename     string
	Date         time.Time
	SequenceHint int
}

// Rank is the relative position implied by the filename. A file without a hint is the first of its day.
func (id FileIdentity) Rank() int {
	if id.SequenceHint == 0 {
		return 1
	}
	return id.SequenceHint
}

// HasHint reports whether the filename carried a "(n)" suffix.
func (id FileIdentity) HasHint() bool { return id.SequenceHint != 0 }

// String renders the identity as "YYYY-MM-DD" or "YYYY-MM-DD (n)".
func (id FileIdentity) String() string {
	s := id.Date.Format(DateLayout)
	if id.HasHint() {
		s += " (" + strconv.Itoa(id.SequenceHint) + ")"
	}
	return s
}

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
