/*
Package calendar provides date-only reasoning on top of time.Time.

PURPOSE:
  Lets callers compare and order date-bearing values while deliberately
  ignoring time-of-day, and represent annually recurring dates (month+day,
  no year) such as holidays.

KEY CONCEPTS IN THIS FILE (datetime.go):
  - DateTime: a thin wrapper over time.Time exposing the calendar-date
    projection (year, month, day, zone) the comparison layer works on.

DESIGN PRINCIPLES:
  1. Immutability: all values are plain value types, never mutated
  2. The zone is an opaque, equality-comparable identifier (the Location
     name); this package performs no zone conversion
  3. time.Time remains the source of truth for weekday and leap-year math

SEE ALSO:
  - recurring.go: RecurringDate (month+day, no year)
  - compare.go:   date-only comparison over both shapes
  - weekday.go:   weekday and month-length helpers
*/
package calendar

import "time"

// =============================================================================
// DATETIME - Full date-bearing value (year + month + day + zone)
// =============================================================================

// DateTime wraps a time.Time. The wrapped value keeps its time-of-day and
// location; the comparison layer in this package looks only at the calendar
// date and the location name.
type DateTime struct {
	Time time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) DateTime {
	return DateTime{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func NewDateTime(year int, month time.Month, day, hour, min int) DateTime {
	return DateTime{Time: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}

func NewDateTimeIn(year int, month time.Month, day, hour, min int, loc *time.Location) DateTime {
	return DateTime{Time: time.Date(year, month, day, hour, min, 0, 0, loc)}
}

func FromTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func Today() DateTime {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Properties
func (d DateTime) Year() int             { return d.Time.Year() }
func (d DateTime) Month() time.Month     { return d.Time.Month() }
func (d DateTime) Day() int              { return d.Time.Day() }
func (d DateTime) Weekday() time.Weekday { return d.Time.Weekday() }
func (d DateTime) IsZero() bool          { return d.Time.IsZero() }

// Zone returns the opaque zone identifier (the Location name). A DateTime
// always carries a zone; time.Time's Location is never nil.
func (d DateTime) Zone() string { return d.Time.Location().String() }

// Arithmetic
func (d DateTime) AddDays(n int) DateTime  { return DateTime{Time: d.Time.AddDate(0, 0, n)} }
func (d DateTime) AddYears(n int) DateTime { return DateTime{Time: d.Time.AddDate(n, 0, 0)} }

func (d DateTime) String() string {
	return d.Time.Format("2006-01-02")
}

// dateParts projects the calendar-date portion; time-of-day is dropped here
// and never reaches the comparison logic.
func (d DateTime) dateParts() dateParts {
	return dateParts{
		year:    d.Time.Year(),
		hasYear: true,
		month:   d.Time.Month(),
		day:     d.Time.Day(),
		zone:    d.Zone(),
	}
}
