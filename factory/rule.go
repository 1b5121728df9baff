/*
Package factory provides JSON to Go holiday conversion.

PURPOSE:
  Converts JSON holiday definitions into holiday.Holiday values. This
  enables calendar configuration without code changes - admins can define
  holidays in JSON, and the factory creates the proper Go structs.

JSON SCHEMA:
  {
    "id": "thanksgiving",
    "company_id": "",
    "name": "Thanksgiving Day",
    "rule": {
      "type": "nth_weekday",
      "month": 11,
      "weekday": "thursday",
      "occurrence": 4
    },
    "observance": "exact",
    "weight": "1"
  }

  Rule types:
    fixed        {"type": "fixed", "date": "2024-06-03"}
    annual       {"type": "annual", "month": 12, "day": 25, "zone": "..."}
    nth_weekday  {"type": "nth_weekday", "month": 11, "weekday": "thursday",
                  "occurrence": 4}   (negative occurrence counts from the end)

KEY FEATURES:
  - Validates structure and month/day ranges (via the calendar core)
  - Sets sensible defaults: exact observance, full-day weight
  - Weight parsed as a decimal string to keep half days exact

USAGE:
  factory := NewHolidayFactory()
  h, err := factory.ParseHoliday(jsonString)

SEE ALSO:
  - holiday/rules.go: Rule definitions
  - api/handlers.go:  Uses the factory for POST /api/holidays
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/holiday"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// HolidayJSON is the JSON representation of a holiday.
type HolidayJSON struct {
	ID         string   `json:"id,omitempty"`
	CompanyID  string   `json:"company_id,omitempty"`
	Name       string   `json:"name"`
	Rule       RuleJSON `json:"rule"`
	Observance string   `json:"observance,omitempty"`
	Weight     string   `json:"weight,omitempty"`
}

// RuleJSON represents one holiday rule.
type RuleJSON struct {
	Type string `json:"type"` // fixed, annual, nth_weekday

	// fixed
	Date string `json:"date,omitempty"` // YYYY-MM-DD

	// annual
	Month int    `json:"month,omitempty"` // 1-12, shared with nth_weekday
	Day   int    `json:"day,omitempty"`
	Zone  string `json:"zone,omitempty"`

	// nth_weekday
	Weekday    string `json:"weekday,omitempty"` // "monday".."sunday"
	Occurrence int    `json:"occurrence,omitempty"`
}

// =============================================================================
// HOLIDAY FACTORY
// =============================================================================

// HolidayFactory converts JSON holiday definitions to Go structs.
type HolidayFactory struct{}

// NewHolidayFactory creates a new holiday factory.
func NewHolidayFactory() *HolidayFactory {
	return &HolidayFactory{}
}

// ParseHoliday parses a JSON string into a Holiday.
func (f *HolidayFactory) ParseHoliday(jsonStr string) (holiday.Holiday, error) {
	var hj HolidayJSON
	if err := json.Unmarshal([]byte(jsonStr), &hj); err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse holiday JSON: %w", err)
	}
	return f.FromJSON(hj)
}

// FromJSON converts HolidayJSON to holiday.Holiday.
func (f *HolidayFactory) FromJSON(hj HolidayJSON) (holiday.Holiday, error) {
	if hj.Name == "" {
		return holiday.Holiday{}, fmt.Errorf("holiday name is required")
	}

	rule, err := parseRule(hj.Rule)
	if err != nil {
		return holiday.Holiday{}, err
	}

	observance, err := parseObservance(hj.Observance)
	if err != nil {
		return holiday.Holiday{}, err
	}

	weight, err := parseWeight(hj.Weight)
	if err != nil {
		return holiday.Holiday{}, err
	}

	return holiday.Holiday{
		ID:         hj.ID,
		CompanyID:  hj.CompanyID,
		Name:       hj.Name,
		Rule:       rule,
		Observance: observance,
		Weight:     weight,
	}, nil
}

// ToJSON converts a Holiday back to its JSON representation.
func (f *HolidayFactory) ToJSON(h holiday.Holiday) HolidayJSON {
	hj := HolidayJSON{
		ID:         h.ID,
		CompanyID:  h.CompanyID,
		Name:       h.Name,
		Observance: string(h.Observance),
		Weight:     h.Weight.String(),
	}

	switch h.Rule.Kind {
	case holiday.RuleFixed:
		hj.Rule = RuleJSON{Type: "fixed", Date: h.Rule.Fixed.String()}
	case holiday.RuleAnnual:
		hj.Rule = RuleJSON{
			Type:  "annual",
			Month: int(h.Rule.Annual.Month()),
			Day:   h.Rule.Annual.Day(),
			Zone:  h.Rule.Annual.Zone(),
		}
	case holiday.RuleNthWeekday:
		hj.Rule = RuleJSON{
			Type:       "nth_weekday",
			Month:      int(h.Rule.Month),
			Weekday:    strings.ToLower(h.Rule.Weekday.String()),
			Occurrence: h.Rule.Occurrence,
		}
	}
	return hj
}

// =============================================================================
// PARSERS
// =============================================================================

func parseRule(rj RuleJSON) (holiday.Rule, error) {
	switch rj.Type {
	case "fixed":
		t, err := time.Parse("2006-01-02", rj.Date)
		if err != nil {
			return holiday.Rule{}, fmt.Errorf("invalid fixed date %q: %w", rj.Date, err)
		}
		return holiday.FixedRule(calendar.FromTime(t)), nil

	case "annual":
		rd, err := calendar.NewRecurringDateIn(time.Month(rj.Month), rj.Day, rj.Zone)
		if err != nil {
			return holiday.Rule{}, err
		}
		return holiday.AnnualRule(rd), nil

	case "nth_weekday":
		if rj.Month < 1 || rj.Month > 12 {
			return holiday.Rule{}, fmt.Errorf("invalid month %d", rj.Month)
		}
		weekday, err := ParseWeekday(rj.Weekday)
		if err != nil {
			return holiday.Rule{}, err
		}
		if rj.Occurrence == 0 || rj.Occurrence > 5 || rj.Occurrence < -5 {
			return holiday.Rule{}, fmt.Errorf("occurrence %d out of range [-5, 5] excluding 0", rj.Occurrence)
		}
		return holiday.NthWeekdayRule(time.Month(rj.Month), weekday, rj.Occurrence), nil

	default:
		return holiday.Rule{}, fmt.Errorf("unknown rule type %q", rj.Type)
	}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return wd, nil
}

func parseObservance(s string) (holiday.Observance, error) {
	switch s {
	case "", string(holiday.ObservedExact):
		return holiday.ObservedExact, nil
	case string(holiday.ObservedNearestWorkday):
		return holiday.ObservedNearestWorkday, nil
	default:
		return "", fmt.Errorf("unknown observance %q", s)
	}
}

func parseWeight(s string) (decimal.Decimal, error) {
	if s == "" {
		return holiday.FullDay, nil
	}
	w, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	if w.IsNegative() || w.GreaterThan(holiday.FullDay) {
		return decimal.Decimal{}, fmt.Errorf("weight %s outside [0, 1]", w)
	}
	return w, nil
}
