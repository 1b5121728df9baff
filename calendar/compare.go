/*
compare.go - Date-only comparison over date-bearing values

PURPOSE:
  A three-way ordering that considers only the calendar date: year (when
  both sides carry one), month, day. Time-of-day never participates.
  Works uniformly over full dates, recurring dates, and mixed pairs.

ZONE PRECONDITION:
  When both operands carry a zone and the zones differ, comparison fails
  with IncompatibleZoneError before any field is looked at. A full date
  always carries a zone; a recurring date may be unzoned, which makes it
  comparable against any zone.

MIRROR CONSISTENCY:
  Both shapes project onto the same normalized dateParts and one
  comparison body handles every pair, so Compare(a, b) == -Compare(b, a)
  holds by construction rather than by duplicated branching.

SEE ALSO:
  - datetime.go, recurring.go: the two DateBearing implementations
*/
package calendar

import "time"

// =============================================================================
// ORDERING - Three-way comparison result
// =============================================================================

type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// =============================================================================
// DATE-BEARING - Shared projection over both value shapes
// =============================================================================

// dateParts is the normalized calendar-date projection the comparison
// operates on. hasYear is false for recurring dates; zone "" means unzoned.
type dateParts struct {
	year    int
	hasYear bool
	month   time.Month
	day     int
	zone    string
}

// DateBearing is anything comparable by calendar date: a DateTime or a
// RecurringDate. The interface is sealed; no other implementations exist.
type DateBearing interface {
	dateParts() dateParts
}

// =============================================================================
// COMPARISON
// =============================================================================

// Compare returns the date-only ordering of a against b.
//
// Year is compared first when both sides carry one, then month, then day,
// strictly lexicographically. When one side is a RecurringDate the full
// date's year is ignored entirely. Zone never breaks ties.
func Compare(a, b DateBearing) (Ordering, error) {
	pa, pb := a.dateParts(), b.dateParts()

	if pa.zone != "" && pb.zone != "" && pa.zone != pb.zone {
		return Equal, &IncompatibleZoneError{ZoneA: pa.zone, ZoneB: pb.zone}
	}

	if pa.hasYear && pb.hasYear {
		if pa.year != pb.year {
			return orderInt(pa.year, pb.year), nil
		}
	}
	if pa.month != pb.month {
		return orderInt(int(pa.month), int(pb.month)), nil
	}
	return orderInt(pa.day, pb.day), nil
}

// CompareStrict is Compare without ties: it returns Less only when Compare
// reports Less and Greater otherwise, never Equal. A strict-ordering check
// over a sequence can therefore tell non-decreasing from strictly
// increasing, which a plain three-way compare cannot.
func CompareStrict(a, b DateBearing) (Ordering, error) {
	ord, err := Compare(a, b)
	if err != nil {
		return Equal, err
	}
	if ord == Less {
		return Less, nil
	}
	return Greater, nil
}

func orderInt(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// =============================================================================
// DERIVED RELATIONS - Each a direct function of Compare's result
// =============================================================================

// DateEqual reports whether a and b fall on the same calendar date.
func DateEqual(a, b DateBearing) (bool, error) {
	ord, err := Compare(a, b)
	return err == nil && ord == Equal, err
}

// DateNotEqual reports whether a and b fall on different calendar dates.
func DateNotEqual(a, b DateBearing) (bool, error) {
	ord, err := Compare(a, b)
	return err == nil && ord != Equal, err
}

// DateBefore reports whether a falls strictly before b.
func DateBefore(a, b DateBearing) (bool, error) {
	ord, err := Compare(a, b)
	return err == nil && ord == Less, err
}

// DateOnOrBefore reports whether a falls on or before b.
func DateOnOrBefore(a, b DateBearing) (bool, error) {
	ord, err := Compare(a, b)
	return err == nil && ord != Greater, err
}

// DateAfter reports whether a falls strictly after b.
func DateAfter(a, b DateBearing) (bool, error) {
	ord, err := Compare(a, b)
	return err == nil && ord == Greater, err
}

// DateOnOrAfter reports whether a falls on or after b.
func DateOnOrAfter(a, b DateBearing) (bool, error) {
	ord, err := Compare(a, b)
	return err == nil && ord != Less, err
}
