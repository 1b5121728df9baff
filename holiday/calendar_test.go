package holiday_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/holiday"
	"github.com/warp/calendar-engine/holiday/store"
)

func christmasDay() holiday.Holiday {
	return holiday.Holiday{
		ID:         "christmas",
		Name:       "Christmas Day",
		Rule:       holiday.AnnualRule(calendar.MustRecurringDate(time.December, 25)),
		Observance: holiday.ObservedExact,
		Weight:     holiday.FullDay,
	}
}

func christmasEveHalfDay() holiday.Holiday {
	return holiday.Holiday{
		ID:         "christmas-eve",
		Name:       "Christmas Eve",
		Rule:       holiday.AnnualRule(calendar.MustRecurringDate(time.December, 24)),
		Observance: holiday.ObservedExact,
		Weight:     decimal.RequireFromString("0.5"),
	}
}

func TestCalendar_IsHoliday(t *testing.T) {
	cal := holiday.NewCalendar(christmasDay())

	ok, h := cal.IsHoliday(calendar.NewDate(2023, time.December, 25))
	require.True(t, ok)
	assert.Equal(t, "Christmas Day", h.Name)

	ok, _ = cal.IsHoliday(calendar.NewDate(2023, time.December, 26))
	assert.False(t, ok)

	// A different year still matches the annual rule.
	ok, _ = cal.IsHoliday(calendar.NewDate(2031, time.December, 25))
	assert.True(t, ok)
}

func TestCalendar_IsHoliday_NonUTCQueryDate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cal := holiday.NewCalendar(christmasDay())

	// The query date's location must not affect the match: Christmas
	// noon in New York is still Christmas.
	noon := calendar.NewDateTimeIn(2023, time.December, 25, 12, 0, ny)
	ok, h := cal.IsHoliday(noon)
	require.True(t, ok)
	assert.Equal(t, "Christmas Day", h.Name)

	weight := cal.WorkdayWeight(noon)
	assert.True(t, weight.IsZero(), "got %s", weight)

	// The week counts the same from New York as from UTC.
	got := cal.WorkingDays(
		calendar.NewDateTimeIn(2023, time.December, 25, 9, 0, ny),
		calendar.NewDateTimeIn(2023, time.December, 29, 17, 0, ny),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(4)), "got %s", got)
}

func TestCalendar_HolidaysIn_SortedByDate(t *testing.T) {
	cal := holiday.NewCalendar(holiday.USFederalHolidays()...)

	resolved := cal.HolidaysIn(2024)
	require.Len(t, resolved, 11)

	for i := 0; i < len(resolved)-1; i++ {
		onOrBefore, err := calendar.DateOnOrBefore(resolved[i].Date, resolved[i+1].Date)
		require.NoError(t, err)
		assert.True(t, onOrBefore, "%s should not come after %s", resolved[i].Holiday.Name, resolved[i+1].Holiday.Name)
	}

	assert.Equal(t, "New Year's Day", resolved[0].Holiday.Name)
	assert.Equal(t, "Christmas Day", resolved[len(resolved)-1].Holiday.Name)
}

func TestCalendar_WorkingDays_PlainWeek(t *testing.T) {
	cal := holiday.NewCalendar()

	// Mon Aug 7 through Sun Aug 13, 2023: five working days.
	got := cal.WorkingDays(calendar.NewDate(2023, time.August, 7), calendar.NewDate(2023, time.August, 13))
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "got %s", got)
}

func TestCalendar_WorkingDays_WithFullHoliday(t *testing.T) {
	cal := holiday.NewCalendar(christmasDay())

	// Mon Dec 25 through Fri Dec 29, 2023: Christmas removes one full day.
	got := cal.WorkingDays(calendar.NewDate(2023, time.December, 25), calendar.NewDate(2023, time.December, 29))
	assert.True(t, got.Equal(decimal.NewFromInt(4)), "got %s", got)
}

func TestCalendar_WorkingDays_WithHalfDay(t *testing.T) {
	cal := holiday.NewCalendar(christmasEveHalfDay())

	// Mon Dec 18 through Fri Dec 22 2023 plus half-day; use 2024 where
	// Dec 24 is a Tuesday. Mon Dec 23 - Fri Dec 27 2024, Christmas Eve
	// counts half.
	got := cal.WorkingDays(calendar.NewDate(2024, time.December, 23), calendar.NewDate(2024, time.December, 27))
	assert.True(t, got.Equal(decimal.RequireFromString("4.5")), "got %s", got)
}

func TestCalendar_WorkingDays_HolidayOnWeekendDoesNotSubtract(t *testing.T) {
	cal := holiday.NewCalendar(christmasDay())

	// Christmas 2022 falls on a Sunday with exact observance; the week
	// keeps its five working days.
	got := cal.WorkingDays(calendar.NewDate(2022, time.December, 19), calendar.NewDate(2022, time.December, 25))
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "got %s", got)
}

func TestCalendar_WorkingDays_EmptyRange(t *testing.T) {
	cal := holiday.NewCalendar()
	got := cal.WorkingDays(calendar.NewDate(2023, time.March, 10), calendar.NewDate(2023, time.March, 9))
	assert.True(t, got.IsZero())
}

func TestCalendar_WorkdayWeight_NeverNegative(t *testing.T) {
	// Two overlapping full-day holidays on the same date still floor at zero.
	a := christmasDay()
	b := christmasDay()
	b.ID, b.Name = "boxing-prep", "Inventory Day"
	cal := holiday.NewCalendar(a, b)

	weight := cal.WorkdayWeight(calendar.NewDate(2023, time.December, 25))
	assert.True(t, weight.IsZero())
}

func TestMemoryStore_RoundTripAndScoping(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	global := christmasDay() // CompanyID "" = global
	require.NoError(t, mem.SaveHoliday(ctx, global))

	acme := christmasEveHalfDay()
	acme.CompanyID = "acme"
	require.NoError(t, mem.SaveHoliday(ctx, acme))

	other := holiday.Holiday{
		ID:        "other-day",
		CompanyID: "other",
		Name:      "Other Founding Day",
		Rule:      holiday.AnnualRule(calendar.MustRecurringDate(time.March, 1)),
		Weight:    holiday.FullDay,
	}
	require.NoError(t, mem.SaveHoliday(ctx, other))

	// Acme sees its own holiday plus the global one, not the other company's.
	list, err := mem.ListHolidays(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, list, 2)

	got, err := mem.GetHoliday(ctx, "christmas")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Christmas Day", got.Name)

	missing, err := mem.GetHoliday(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, mem.DeleteHoliday(ctx, "christmas"))
	list, err = mem.ListHolidays(ctx, "acme")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCalendarFor_BuildsFromStore(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.SaveHoliday(ctx, christmasDay()))

	cal, err := holiday.CalendarFor(ctx, mem, "acme")
	require.NoError(t, err)

	ok, _ := cal.IsHoliday(calendar.NewDate(2023, time.December, 25))
	assert.True(t, ok)
}
