/*
weekday.go - Weekday and month-length helpers

PURPOSE:
  Supporting calendar arithmetic for the holiday layer: weekend checks,
  end-of-February detection, and the n-th-weekday-of-month search used to
  resolve rules like "fourth Thursday of November".

SEE ALSO:
  - holiday/rules.go: nth-weekday holiday rules built on NthWeekdayOfMonth
*/
package calendar

import "time"

// DaysInMonth returns the number of days in the month for the given year,
// leap years included. Day 0 of the next month is the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekendDay reports whether the date falls on a Saturday or Sunday.
func IsWeekendDay(d DateTime) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsLastDayOfFebruary reports whether the date is February 29 in a leap
// year or February 28 otherwise.
func IsLastDayOfFebruary(d DateTime) bool {
	return d.Month() == time.February && d.Day() == DaysInMonth(d.Year(), time.February)
}

// NthWeekdayOfMonth returns the day of month on which the given weekday
// occurs for the occurrence-th time. A positive occurrence counts forward
// from day 1; a negative occurrence counts backward from the last day of
// the month, so -1 is the final such weekday.
//
// The bool is false when the occurrence does not exist in that month (for
// example a fifth Monday), when occurrence is 0, or when its magnitude
// exceeds 5. Out-of-range requests are a not-found result, never an error.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, occurrence int) (int, bool) {
	if occurrence == 0 || occurrence > 5 || occurrence < -5 {
		return 0, false
	}

	days := DaysInMonth(year, month)

	var day int
	if occurrence > 0 {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
		delta := int(weekday) - int(first)
		if delta >= 0 {
			day = delta + 7*(occurrence-1) + 1
		} else {
			day = delta + 7*occurrence + 1
		}
	} else {
		last := time.Date(year, month, days, 0, 0, 0, 0, time.UTC).Weekday()
		delta := int(last) - int(weekday)
		k := -occurrence
		if delta >= 0 {
			day = days - delta - 7*(k-1)
		} else {
			day = days - delta - 7*k
		}
	}

	if day < 1 || day > days {
		return 0, false
	}
	return day, true
}
