/*
calendar.go - Holiday calendar aggregate

PURPOSE:
  Collects the holidays that apply to one company (its own plus the
  global set) and answers the questions the rest of the system asks:
  is this date a holiday, which holidays fall in a year, and how many
  working days does a date range contain once weekends and weighted
  holidays are removed.

WORKING-DAY MATH:
  Weights are decimals so half-day holidays subtract 0.5 rather than
  rounding. Weekend days contribute nothing; a holiday falling on a
  weekend (exact observance) does not subtract twice.
*/
package holiday

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// CALENDAR - Holidays applying to one company
// =============================================================================

type Calendar struct {
	holidays []Holiday
}

// NewCalendar builds a calendar from the given holidays. The slice is
// copied; the calendar is immutable afterwards and safe for concurrent use.
func NewCalendar(holidays ...Holiday) *Calendar {
	c := &Calendar{holidays: make([]Holiday, len(holidays))}
	copy(c.holidays, holidays)
	return c
}

// Holidays returns the configured holidays in insertion order.
func (c *Calendar) Holidays() []Holiday {
	out := make([]Holiday, len(c.holidays))
	copy(out, c.holidays)
	return out
}

// sameCalendarDate matches on the nominal (year, month, day) triple.
// Resolved holiday dates are zone-free nominal dates, so matching a
// query date must not trip the comparison layer's zone precondition;
// the query's location is irrelevant here.
func sameCalendarDate(a, b calendar.DateTime) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsHoliday reports whether the date is an observed holiday and returns
// the first matching holiday. The date's location does not affect the
// match.
func (c *Calendar) IsHoliday(date calendar.DateTime) (bool, Holiday) {
	for _, h := range c.holidays {
		resolved, ok := h.DateIn(date.Year())
		if !ok {
			continue
		}
		if sameCalendarDate(resolved, date) {
			return true, h
		}
	}
	return false, Holiday{}
}

// HolidaysIn resolves every holiday for the year, dropping the ones that
// do not occur, sorted by date.
func (c *Calendar) HolidaysIn(year int) []Resolved {
	var out []Resolved
	for _, h := range c.holidays {
		if d, ok := h.DateIn(year); ok {
			out = append(out, Resolved{Holiday: h, Date: d})
		}
	}
	// All dates here carry the same year, so (month, day) orders them.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Date, out[j].Date
		if a.Month() != b.Month() {
			return a.Month() < b.Month()
		}
		return a.Day() < b.Day()
	})
	return out
}

// WorkdayWeight returns how much of a working day the date is worth:
// zero on weekends, 1 minus the holiday weight on holidays (floored at
// zero), 1 otherwise.
func (c *Calendar) WorkdayWeight(date calendar.DateTime) decimal.Decimal {
	if calendar.IsWeekendDay(date) {
		return decimal.Zero
	}
	weight := FullDay
	for _, h := range c.holidays {
		resolved, ok := h.DateIn(date.Year())
		if !ok {
			continue
		}
		if sameCalendarDate(resolved, date) {
			weight = weight.Sub(h.Weight)
		}
	}
	if weight.IsNegative() {
		return decimal.Zero
	}
	return weight
}

// WorkingDays sums WorkdayWeight over [from, to] inclusive. The range is
// empty when to precedes from. Bounds are treated as nominal dates; their
// locations do not participate.
func (c *Calendar) WorkingDays(from, to calendar.DateTime) decimal.Decimal {
	total := decimal.Zero
	for d := from; onOrBeforeCalendarDate(d, to); d = d.AddDays(1) {
		total = total.Add(c.WorkdayWeight(d))
	}
	return total
}

func onOrBeforeCalendarDate(a, b calendar.DateTime) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	if a.Month() != b.Month() {
		return a.Month() < b.Month()
	}
	return a.Day() <= b.Day()
}
