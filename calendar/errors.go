/*
errors.go - Centralized error types for the calendar core

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers match with errors.Is/errors.As; the structured types carry the
  offending values for diagnostics.

ERROR CATEGORIES:
  1. Construction errors - RecurringDate validation failures
  2. Comparison errors   - Zone compatibility precondition violations

USAGE:
  if errors.Is(err, calendar.ErrIncompatibleZone) {
      // normalize zones before comparing
  }

SEE ALSO:
  - recurring.go: Returns InvalidDateError
  - compare.go:   Returns IncompatibleZoneError
*/
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when a (month, day) pair cannot occur in
	// any year, e.g. April 31 or February 30.
	ErrInvalidDate = errors.New("invalid date")

	// ErrIncompatibleZone is returned when both comparison operands carry a
	// time zone and the zones differ. Callers must normalize zones before
	// comparing mixed-zone values; no best-effort comparison is attempted.
	ErrIncompatibleZone = errors.New("incompatible time zones")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateError reports a (month, day) pair rejected by the RecurringDate
// constructor.
type InvalidDateError struct {
	Month time.Month
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %s %d can never occur", e.Month, e.Day)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// IncompatibleZoneError reports the two zones that prevented a comparison.
type IncompatibleZoneError struct {
	ZoneA string
	ZoneB string
}

func (e *IncompatibleZoneError) Error() string {
	return fmt.Sprintf("incompatible time zones: %q vs %q", e.ZoneA, e.ZoneB)
}

func (e *IncompatibleZoneError) Unwrap() error {
	return ErrIncompatibleZone
}
