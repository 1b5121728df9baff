// Package holiday implements holiday calendars on top of the calendar core.
// A holiday is a named rule that resolves to at most one date per year,
// with an observance shift and a working-day weight.
package holiday

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// OBSERVANCE - How a holiday shifts when it lands on a weekend
// =============================================================================

type Observance string

const (
	// ObservedExact keeps the holiday on its nominal date.
	ObservedExact Observance = "exact"

	// ObservedNearestWorkday moves a Saturday holiday to the preceding
	// Friday and a Sunday holiday to the following Monday, the US federal
	// convention.
	ObservedNearestWorkday Observance = "nearest_workday"
)

// =============================================================================
// HOLIDAY - A named, weighted, annually resolvable rule
// =============================================================================

// Holiday describes one holiday. CompanyID "" marks a global holiday that
// applies to every company.
type Holiday struct {
	ID         string
	CompanyID  string
	Name       string
	Rule       Rule
	Observance Observance

	// Weight is the fraction of a working day the holiday removes:
	// 1 for a full day off, 0.5 for a half day such as Christmas Eve.
	Weight decimal.Decimal
}

// FullDay is the weight of an ordinary full-day holiday.
var FullDay = decimal.NewFromInt(1)

// DateIn resolves the holiday's observed date for a year. The bool is
// false when the rule does not produce a date that year (a fixed rule for
// another year, February 29 outside leap years, a missing fifth weekday).
func (h Holiday) DateIn(year int) (calendar.DateTime, bool) {
	d, ok := h.Rule.ResolveIn(year)
	if !ok {
		return calendar.DateTime{}, false
	}
	if h.Observance == ObservedNearestWorkday {
		d = shiftToNearestWorkday(d)
	}
	return d, true
}

// shiftToNearestWorkday applies the Saturday->Friday, Sunday->Monday
// convention. The result is never a weekend day.
func shiftToNearestWorkday(d calendar.DateTime) calendar.DateTime {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// Resolved is a holiday pinned to a concrete year.
type Resolved struct {
	Holiday Holiday
	Date    calendar.DateTime
}
