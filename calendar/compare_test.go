package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/calendar"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestCompare_IgnoresTimeOfDay(t *testing.T) {
	morning := calendar.NewDateTime(2023, time.September, 18, 2, 0)
	evening := calendar.NewDateTime(2023, time.September, 18, 23, 59)

	ord, err := calendar.Compare(morning, evening)
	require.NoError(t, err)
	assert.Equal(t, calendar.Equal, ord, "same day at different times must compare equal")
}

func TestCompare_FullDates_Lexicographic(t *testing.T) {
	tests := []struct {
		name string
		a, b calendar.DateTime
		want calendar.Ordering
	}{
		{"earlier year", calendar.NewDate(2022, time.December, 31), calendar.NewDate(2023, time.January, 1), calendar.Less},
		{"earlier month same year", calendar.NewDate(2023, time.March, 20), calendar.NewDate(2023, time.April, 1), calendar.Less},
		{"earlier day same month", calendar.NewDate(2023, time.March, 5), calendar.NewDate(2023, time.March, 6), calendar.Less},
		{"later year", calendar.NewDate(2024, time.January, 1), calendar.NewDate(2023, time.December, 31), calendar.Greater},
		{"identical", calendar.NewDate(2023, time.June, 15), calendar.NewDate(2023, time.June, 15), calendar.Equal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ord, err := calendar.Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ord)
		})
	}
}

func TestCompare_Reflexive(t *testing.T) {
	d := calendar.NewDateTime(2023, time.September, 18, 14, 30)

	ord, err := calendar.Compare(d, d)
	require.NoError(t, err)
	assert.Equal(t, calendar.Equal, ord)

	strict, err := calendar.CompareStrict(d, d)
	require.NoError(t, err)
	assert.Equal(t, calendar.Greater, strict, "strict compare never reports equality")
}

func TestCompare_Antisymmetric(t *testing.T) {
	a := calendar.NewDate(2023, time.May, 10)
	b := calendar.NewDate(2023, time.November, 2)

	ab, err := calendar.Compare(a, b)
	require.NoError(t, err)
	ba, err := calendar.Compare(b, a)
	require.NoError(t, err)

	assert.Equal(t, -ab, ba)
}

func TestCompare_Transitive(t *testing.T) {
	a := calendar.NewDate(2023, time.January, 10)
	b := calendar.NewDate(2023, time.June, 10)
	c := calendar.NewDate(2024, time.June, 10)

	ab, err := calendar.Compare(a, b)
	require.NoError(t, err)
	bc, err := calendar.Compare(b, c)
	require.NoError(t, err)
	ac, err := calendar.Compare(a, c)
	require.NoError(t, err)

	require.NotEqual(t, calendar.Greater, ab)
	require.NotEqual(t, calendar.Greater, bc)
	assert.NotEqual(t, calendar.Greater, ac)
}

func TestCompare_RecurringAgainstFullDate_IgnoresYear(t *testing.T) {
	christmas := calendar.MustRecurringDate(time.December, 25)

	// Any year's December 25 matches.
	for _, year := range []int{1999, 2023, 2100} {
		ord, err := calendar.Compare(calendar.NewDate(year, time.December, 25), christmas)
		require.NoError(t, err)
		assert.Equal(t, calendar.Equal, ord, "year %d", year)
	}

	ord, err := calendar.Compare(calendar.NewDate(2023, time.December, 24), christmas)
	require.NoError(t, err)
	assert.Equal(t, calendar.Less, ord)

	ord, err = calendar.Compare(calendar.NewDate(2023, time.December, 26), christmas)
	require.NoError(t, err)
	assert.Equal(t, calendar.Greater, ord)
}

func TestCompare_MirrorConsistency(t *testing.T) {
	// Compare(full, recurring) must be the negation of Compare(recurring, full)
	// for every pair, including ties.
	recurring := calendar.MustRecurringDate(time.July, 4)
	dates := []calendar.DateTime{
		calendar.NewDate(2023, time.July, 3),
		calendar.NewDate(2023, time.July, 4),
		calendar.NewDate(2023, time.July, 5),
		calendar.NewDate(1987, time.January, 1),
		calendar.NewDate(2050, time.December, 31),
	}

	for _, d := range dates {
		forward, err := calendar.Compare(d, recurring)
		require.NoError(t, err)
		backward, err := calendar.Compare(recurring, d)
		require.NoError(t, err)
		assert.Equal(t, -forward, backward, "date %s", d)
	}
}

func TestCompare_RecurringPair(t *testing.T) {
	april := calendar.MustRecurringDate(time.April, 30)
	june := calendar.MustRecurringDate(time.June, 1)

	ord, err := calendar.Compare(april, june)
	require.NoError(t, err)
	assert.Equal(t, calendar.Less, ord, "month ranks before day")

	sameMonthEarlier := calendar.MustRecurringDate(time.June, 1)
	ord, err = calendar.Compare(june, sameMonthEarlier)
	require.NoError(t, err)
	assert.Equal(t, calendar.Equal, ord)
}

func TestCompare_ZonePrecondition_FullDates(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	tokyo := mustZone(t, "Asia/Tokyo")

	a := calendar.NewDateTimeIn(2023, time.September, 18, 12, 0, ny)
	b := calendar.NewDateTimeIn(2023, time.September, 18, 12, 0, tokyo)

	_, err := calendar.Compare(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrIncompatibleZone)

	var zoneErr *calendar.IncompatibleZoneError
	require.ErrorAs(t, err, &zoneErr)
	assert.Equal(t, "America/New_York", zoneErr.ZoneA)
	assert.Equal(t, "Asia/Tokyo", zoneErr.ZoneB)

	// Same zone compares fine.
	c := calendar.NewDateTimeIn(2023, time.September, 19, 0, 0, ny)
	ord, err := calendar.Compare(a, c)
	require.NoError(t, err)
	assert.Equal(t, calendar.Less, ord)
}

func TestCompare_ZonePrecondition_Recurring(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	full := calendar.NewDateTimeIn(2023, time.July, 4, 9, 0, ny)

	// Unzoned recurring dates are comparable against any zone.
	unzoned := calendar.MustRecurringDate(time.July, 4)
	ord, err := calendar.Compare(full, unzoned)
	require.NoError(t, err)
	assert.Equal(t, calendar.Equal, ord)

	// A matching zone tag is compatible.
	tagged, err := calendar.NewRecurringDateIn(time.July, 4, "America/New_York")
	require.NoError(t, err)
	ord, err = calendar.Compare(full, tagged)
	require.NoError(t, err)
	assert.Equal(t, calendar.Equal, ord)

	// A different zone tag is not.
	other, err := calendar.NewRecurringDateIn(time.July, 4, "Asia/Tokyo")
	require.NoError(t, err)
	_, err = calendar.Compare(full, other)
	assert.ErrorIs(t, err, calendar.ErrIncompatibleZone)

	// Two zoned recurring dates must agree as well.
	_, err = calendar.Compare(tagged, other)
	assert.ErrorIs(t, err, calendar.ErrIncompatibleZone)
}

func TestCompareStrict_ZonePrecondition(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	tokyo := mustZone(t, "Asia/Tokyo")

	_, err := calendar.CompareStrict(
		calendar.NewDateTimeIn(2023, time.March, 1, 0, 0, ny),
		calendar.NewDateTimeIn(2023, time.March, 1, 0, 0, tokyo),
	)
	assert.ErrorIs(t, err, calendar.ErrIncompatibleZone)
}

func TestCompareStrict_DistinguishesDuplicatesFromIncreases(t *testing.T) {
	d1 := calendar.NewDateTime(2023, time.September, 18, 2, 0)
	d2 := calendar.NewDateTime(2023, time.September, 18, 5, 0)
	d3 := calendar.NewDateTime(2023, time.October, 18, 1, 0)

	// [d1, d2, d3] is non-decreasing under Compare.
	seq := []calendar.DateTime{d1, d2, d3}
	for i := 0; i < len(seq)-1; i++ {
		ord, err := calendar.Compare(seq[i], seq[i+1])
		require.NoError(t, err)
		assert.NotEqual(t, calendar.Greater, ord)
	}

	// But d1,d2 is not strictly increasing: strict compare calls the
	// duplicate Greater.
	strict, err := calendar.CompareStrict(d1, d2)
	require.NoError(t, err)
	assert.Equal(t, calendar.Greater, strict)

	// d2,d3 is strictly increasing under both variants.
	ord, err := calendar.Compare(d2, d3)
	require.NoError(t, err)
	assert.Equal(t, calendar.Less, ord)
	strict, err = calendar.CompareStrict(d2, d3)
	require.NoError(t, err)
	assert.Equal(t, calendar.Less, strict)
}

func TestDerivedRelations(t *testing.T) {
	earlier := calendar.NewDate(2023, time.February, 1)
	later := calendar.NewDate(2023, time.February, 2)
	same := calendar.NewDateTime(2023, time.February, 1, 18, 45)

	check := func(got bool, err error, want bool, name string) {
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	eq, err := calendar.DateEqual(earlier, same)
	check(eq, err, true, "DateEqual")

	ne, err := calendar.DateNotEqual(earlier, later)
	check(ne, err, true, "DateNotEqual")

	lt, err := calendar.DateBefore(earlier, later)
	check(lt, err, true, "DateBefore")

	le, err := calendar.DateOnOrBefore(earlier, same)
	check(le, err, true, "DateOnOrBefore")

	gt, err := calendar.DateAfter(later, earlier)
	check(gt, err, true, "DateAfter")

	ge, err := calendar.DateOnOrAfter(same, earlier)
	check(ge, err, true, "DateOnOrAfter")

	gt, err = calendar.DateAfter(earlier, later)
	check(gt, err, false, "DateAfter on earlier operand")
}

func TestDerivedRelations_MixedShapes(t *testing.T) {
	recurring := calendar.MustRecurringDate(time.November, 11)

	before, err := calendar.DateBefore(calendar.NewDate(2023, time.November, 10), recurring)
	require.NoError(t, err)
	assert.True(t, before)

	after, err := calendar.DateAfter(recurring, calendar.NewDate(2023, time.November, 10))
	require.NoError(t, err)
	assert.True(t, after)

	eq, err := calendar.DateEqual(recurring, calendar.NewDate(1990, time.November, 11))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestDerivedRelations_PropagateZoneErrors(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	tokyo := mustZone(t, "Asia/Tokyo")
	a := calendar.NewDateTimeIn(2023, time.May, 1, 0, 0, ny)
	b := calendar.NewDateTimeIn(2023, time.May, 1, 0, 0, tokyo)

	got, err := calendar.DateEqual(a, b)
	assert.ErrorIs(t, err, calendar.ErrIncompatibleZone)
	assert.False(t, got)

	got, err = calendar.DateOnOrBefore(a, b)
	assert.ErrorIs(t, err, calendar.ErrIncompatibleZone)
	assert.False(t, got)
}
