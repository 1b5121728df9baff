/*
recurring.go - Annually recurring dates (month + day, no year)

PURPOSE:
  RecurringDate represents a date that recurs every year, such as a fixed
  holiday ("December 25"). It carries no year and optionally a zone tag
  that constrains which full dates it may be compared against.

VALIDATION:
  Construction rejects (month, day) pairs that can never occur in any
  year. February is capped at 29 - the leap year is the most permissive
  case - so February 29 constructs fine while February 30 does not.

SEE ALSO:
  - compare.go: comparison against full dates and other recurring dates
  - errors.go:  InvalidDateError
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// RECURRING DATE - Immutable month+day value
// =============================================================================

// maxDayOfMonth is the leap-year-permissive maximum day per month.
var maxDayOfMonth = [time.December + 1]int{
	time.January:   31,
	time.February:  29,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

// RecurringDate is a month+day pair without a year. The zero value is not
// valid; use NewRecurringDate.
type RecurringDate struct {
	month time.Month
	day   int
	zone  string
}

// NewRecurringDate returns an unzoned recurring date, or InvalidDateError
// when the (month, day) pair can never occur.
func NewRecurringDate(month time.Month, day int) (RecurringDate, error) {
	return NewRecurringDateIn(month, day, "")
}

// NewRecurringDateIn is NewRecurringDate with a zone tag. The zone is never
// used in the ordering itself; it only constrains which values this date
// may be compared against.
func NewRecurringDateIn(month time.Month, day int, zone string) (RecurringDate, error) {
	if month < time.January || month > time.December {
		return RecurringDate{}, &InvalidDateError{Month: month, Day: day}
	}
	if day < 1 || day > maxDayOfMonth[month] {
		return RecurringDate{}, &InvalidDateError{Month: month, Day: day}
	}
	return RecurringDate{month: month, day: day, zone: zone}, nil
}

// MustRecurringDate is NewRecurringDate for statically known dates; panics
// on invalid input.
func MustRecurringDate(month time.Month, day int) RecurringDate {
	rd, err := NewRecurringDate(month, day)
	if err != nil {
		panic(err)
	}
	return rd
}

// Accessors
func (r RecurringDate) Month() time.Month { return r.month }
func (r RecurringDate) Day() int          { return r.day }

// Zone returns the zone tag, or "" when unzoned.
func (r RecurringDate) Zone() string { return r.zone }

// InYear pins the recurring date to a concrete year. The bool is false for
// February 29 in a non-leap year.
func (r RecurringDate) InYear(year int) (DateTime, bool) {
	if r.day > DaysInMonth(year, r.month) {
		return DateTime{}, false
	}
	return NewDate(year, r.month, r.day), true
}

func (r RecurringDate) String() string {
	return fmt.Sprintf("%s %d", r.month, r.day)
}

func (r RecurringDate) dateParts() dateParts {
	return dateParts{
		hasYear: false,
		month:   r.month,
		day:     r.day,
		zone:    r.zone,
	}
}
