/*
rules.go - Holiday date rules

PURPOSE:
  A Rule says when a holiday falls. Three kinds cover the calendars we
  model:
    fixed        one specific date in one specific year (company event)
    annual       the same month+day every year (Christmas, July 4)
    nth_weekday  the n-th weekday of a month, counted from either end
                 (Thanksgiving = 4th Thursday of November,
                  Memorial Day = last Monday of May, occurrence -1)

  Rules resolve per year. Resolution can legitimately come up empty:
  fixed rules outside their year, February 29 in a non-leap year, or a
  fifth weekday a month does not have.

SEE ALSO:
  - calendar/weekday.go: NthWeekdayOfMonth search
  - factory/rule.go:     JSON rule definitions
*/
package holiday

import (
	"fmt"
	"time"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// RULE - Tagged union over the three rule kinds
// =============================================================================

type RuleKind string

const (
	RuleFixed      RuleKind = "fixed"
	RuleAnnual     RuleKind = "annual"
	RuleNthWeekday RuleKind = "nth_weekday"
)

// Rule is a tagged union; Kind selects which of the remaining fields are
// meaningful.
type Rule struct {
	Kind RuleKind

	// RuleFixed
	Fixed calendar.DateTime

	// RuleAnnual
	Annual calendar.RecurringDate

	// RuleNthWeekday
	Month      time.Month
	Weekday    time.Weekday
	Occurrence int
}

// Constructors
func FixedRule(d calendar.DateTime) Rule {
	return Rule{Kind: RuleFixed, Fixed: d}
}

func AnnualRule(rd calendar.RecurringDate) Rule {
	return Rule{Kind: RuleAnnual, Annual: rd}
}

func NthWeekdayRule(month time.Month, weekday time.Weekday, occurrence int) Rule {
	return Rule{Kind: RuleNthWeekday, Month: month, Weekday: weekday, Occurrence: occurrence}
}

// ResolveIn returns the rule's nominal date in the given year, before any
// observance shift. The bool is false when no such date exists that year.
func (r Rule) ResolveIn(year int) (calendar.DateTime, bool) {
	switch r.Kind {
	case RuleFixed:
		if r.Fixed.Year() != year {
			return calendar.DateTime{}, false
		}
		return calendar.NewDate(year, r.Fixed.Month(), r.Fixed.Day()), true

	case RuleAnnual:
		return r.Annual.InYear(year)

	case RuleNthWeekday:
		day, ok := calendar.NthWeekdayOfMonth(year, r.Month, r.Weekday, r.Occurrence)
		if !ok {
			return calendar.DateTime{}, false
		}
		return calendar.NewDate(year, r.Month, day), true

	default:
		return calendar.DateTime{}, false
	}
}

func (r Rule) String() string {
	switch r.Kind {
	case RuleFixed:
		return fmt.Sprintf("fixed %s", r.Fixed)
	case RuleAnnual:
		return fmt.Sprintf("every %s", r.Annual)
	case RuleNthWeekday:
		if r.Occurrence < 0 {
			return fmt.Sprintf("%s %d from the end of %s", r.Weekday, -r.Occurrence, r.Month)
		}
		return fmt.Sprintf("%s %d of %s", r.Weekday, r.Occurrence, r.Month)
	default:
		return string(r.Kind)
	}
}
