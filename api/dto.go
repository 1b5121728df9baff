/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Holiday:
    HolidayDTO (wraps factory.HolidayJSON plus resolved dates)

  Comparison:
    DateOperandDTO, CompareRequest, CompareResponse

  Calendar queries:
    NthWeekdayResponse, WorkdaysResponse

VALIDATION:
  Validation is done in handlers and the factory, not in DTOs. DTOs are
  pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/rule.go: HolidayJSON type
*/
package api

import (
	"fmt"
	"time"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// HolidayDTO represents a holiday in API responses. Date is filled when
// the listing was resolved against a year; it is the observed date.
type HolidayDTO struct {
	factory.HolidayJSON
	Date string `json:"date,omitempty"`
}

// DateOperandDTO is one side of a comparison: either a full date
// (date + optional time + optional zone) or a recurring month+day pair
// (month + day + optional zone).
type DateOperandDTO struct {
	Date  string `json:"date,omitempty"` // YYYY-MM-DD
	Time  string `json:"time,omitempty"` // HH:MM, ignored by the comparison
	Month int    `json:"month,omitempty"`
	Day   int    `json:"day,omitempty"`
	Zone  string `json:"zone,omitempty"`
}

// CompareRequest asks for the date-only ordering of A against B.
type CompareRequest struct {
	A DateOperandDTO `json:"a"`
	B DateOperandDTO `json:"b"`
}

// CompareResponse reports the three-way ordering, the no-ties variant,
// and the derived relations.
type CompareResponse struct {
	Result        string `json:"result"` // less, equal, greater
	Strict        string `json:"strict"` // less, greater
	Equal         bool   `json:"equal"`
	Before        bool   `json:"before"`
	OnOrBefore    bool   `json:"on_or_before"`
	After         bool   `json:"after"`
	OnOrAfter     bool   `json:"on_or_after"`
}

// NthWeekdayResponse reports the resolved day of month, or found=false
// when the occurrence does not exist.
type NthWeekdayResponse struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Weekday    string `json:"weekday"`
	Occurrence int    `json:"occurrence"`
	Found      bool   `json:"found"`
	Day        int    `json:"day,omitempty"`
}

// WorkdaysResponse reports the working-day count for a range, as a
// decimal string so half days stay exact.
type WorkdaysResponse struct {
	CompanyID   string `json:"company_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	WorkingDays string `json:"working_days"`
}

// ErrorResponse is the uniform error shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// OPERAND CONVERSION
// =============================================================================

// toDateBearing converts an operand DTO into a comparable value. Full
// dates take precedence when both shapes are supplied.
func (o DateOperandDTO) toDateBearing() (calendar.DateBearing, error) {
	if o.Date != "" {
		t, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", o.Date, err)
		}
		hour, min := 0, 0
		if o.Time != "" {
			if _, err := fmt.Sscanf(o.Time, "%d:%d", &hour, &min); err != nil {
				return nil, fmt.Errorf("invalid time %q (use HH:MM): %w", o.Time, err)
			}
			// time.Date would normalize an out-of-range clock onto
			// another day and change the comparison.
			if hour < 0 || hour > 23 || min < 0 || min > 59 {
				return nil, fmt.Errorf("invalid time %q (use HH:MM)", o.Time)
			}
		}
		loc := time.UTC
		if o.Zone != "" {
			loc, err = time.LoadLocation(o.Zone)
			if err != nil {
				return nil, fmt.Errorf("unknown zone %q: %w", o.Zone, err)
			}
		}
		return calendar.NewDateTimeIn(t.Year(), t.Month(), t.Day(), hour, min, loc), nil
	}

	if o.Month != 0 || o.Day != 0 {
		rd, err := calendar.NewRecurringDateIn(time.Month(o.Month), o.Day, o.Zone)
		if err != nil {
			return nil, err
		}
		return rd, nil
	}

	return nil, fmt.Errorf("operand needs either date or month+day")
}

func toHolidayDTO(f *factory.HolidayFactory, h HolidayWithDate) HolidayDTO {
	dto := HolidayDTO{HolidayJSON: f.ToJSON(h.Holiday)}
	if !h.Date.IsZero() {
		dto.Date = h.Date.String()
	}
	return dto
}
