/*
defaults.go - Built-in US federal holiday set

PURPOSE:
  The standard eleven US federal holidays expressed through the rule
  kinds: annual rules for the fixed-date ones (with nearest-workday
  observance, the OPM convention) and nth-weekday rules for the floating
  ones. Used to seed new company calendars.
*/
package holiday

import (
	"time"

	"github.com/warp/calendar-engine/calendar"
)

// USFederalHolidays returns the US federal holiday set as global
// (company-independent) holidays. IDs are left blank for the caller to
// assign.
func USFederalHolidays() []Holiday {
	annual := func(name string, month time.Month, day int) Holiday {
		return Holiday{
			Name:       name,
			Rule:       AnnualRule(calendar.MustRecurringDate(month, day)),
			Observance: ObservedNearestWorkday,
			Weight:     FullDay,
		}
	}
	nth := func(name string, month time.Month, weekday time.Weekday, occurrence int) Holiday {
		return Holiday{
			Name:       name,
			Rule:       NthWeekdayRule(month, weekday, occurrence),
			Observance: ObservedExact,
			Weight:     FullDay,
		}
	}

	return []Holiday{
		annual("New Year's Day", time.January, 1),
		nth("Martin Luther King Jr. Day", time.January, time.Monday, 3),
		nth("Presidents' Day", time.February, time.Monday, 3),
		nth("Memorial Day", time.May, time.Monday, -1),
		annual("Juneteenth", time.June, 19),
		annual("Independence Day", time.July, 4),
		nth("Labor Day", time.September, time.Monday, 1),
		nth("Columbus Day", time.October, time.Monday, 2),
		annual("Veterans Day", time.November, 11),
		nth("Thanksgiving Day", time.November, time.Thursday, 4),
		annual("Christmas Day", time.December, 25),
	}
}
