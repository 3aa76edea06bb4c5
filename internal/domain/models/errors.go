package models

import (
	"errors"
	"fmt"
	"time"
)

// Per-file failure causes. Every error produced while processing one document
// wraps exactly one of these.
var (
	ErrInvalidFilename       = errors.New("invalid filename")
	ErrTextExtraction        = errors.New("text extraction failed")
	ErrAmountNotFound        = errors.New("total amount label not found")
	ErrAmbiguousAmount       = errors.New("ambiguous total amount")
	ErrMalformedAmount       = errors.New("malformed total amount")
	ErrRateUnavailable       = errors.New("exchange rate unavailable")
	ErrRateSourceUnavailable = errors.New("exchange rate source unavailable")
)

// ErrorKind names a failure class in skip reports.
type ErrorKind string

const (
	KindInvalidFilename       ErrorKind = "InvalidFilenameError"
	KindTextExtraction        ErrorKind = "TextExtractionError"
	KindAmountNotFound        ErrorKind = "AmountNotFoundError"
	KindAmbiguousAmount       ErrorKind = "AmbiguousAmountError"
	KindMalformedAmount       ErrorKind = "MalformedAmountError"
	KindRateUnavailable       ErrorKind = "RateUnavailableError"
	KindRateSourceUnavailable ErrorKind = "RateSourceUnavailableError"
	KindUnknown               ErrorKind = "UnknownError"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidFilename, KindInvalidFilename},
	{ErrTextExtraction, KindTextExtraction},
	{ErrAmountNotFound, KindAmountNotFound},
	{ErrAmbiguousAmount, KindAmbiguousAmount},
	{ErrMalformedAmount, KindMalformedAmount},
	{ErrRateUnavailable, KindRateUnavailable},
	{ErrRateSourceUnavailable, KindRateSourceUnavailable},
}

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// IsRetryable reports whether rerunning could change the outcome for this file.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateSourceUnavailable)
}

// RateUnavailableError means the source had no rate for Date nor any of the
// Window days before it.
type RateUnavailableError struct {
	Date   time.Time
	Window int
}

func (e *RateUnavailableError) Error() string {
	from := e.Date.AddDate(0, 0, -e.Window)
	return fmt.Sprintf("%s: no USD/CAD rate for %s within %d days (searched %s..%s)",
		ErrRateUnavailable, e.Date.Format(DateLayout), e.Window,
		from.Format(DateLayout), e.Date.Format(DateLayout))
}

func (e *RateUnavailableError) Unwrap() error { return ErrRateUnavailable }

// RateSourceUnavailableError means the source could not be reached while
// looking up Date. Retrying the run may succeed.
type RateSourceUnavailableError struct {
	Date time.Time
	Err  error
}

func (e *RateSourceUnavailableError) Error() string {
	return fmt.Sprintf("%s: lookup %s: %v", ErrRateSourceUnavailable, e.Date.Format(DateLayout), e.Err)
}

// Unwrap exposes both the sentinel and the transport cause.
func (e *RateSourceUnavailableError) Unwrap() []error {
	return []error{ErrRateSourceUnavailable, e.Err}
}
