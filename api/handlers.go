/*
handlers.go - HTTP API handlers for the calendar engine

PURPOSE:
  Exposes the calendar and holiday layers via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Holidays:
    GET    /api/holidays            List holidays (?company=, ?year= resolves dates)
    POST   /api/holidays            Create holiday from a JSON rule definition
    POST   /api/holidays/defaults   Seed the US federal set (?company=)
    DELETE /api/holidays/{id}       Delete holiday

  Calendar:
    GET    /api/calendar/nth-weekday ?year&month&weekday&occurrence
    POST   /api/calendar/compare     Date-only comparison of two operands
    GET    /api/calendar/workdays    ?company&from&to working-day count

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, impossible dates, incompatible zones
  - 404: Holiday not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
	"github.com/warp/calendar-engine/holiday"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   holiday.Store
	Factory *factory.HolidayFactory
}

// NewHandler creates a new handler with the given store.
func NewHandler(store holiday.Store) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewHolidayFactory(),
	}
}

// HolidayWithDate pairs a holiday with its resolved date when a listing
// was asked for a specific year.
type HolidayWithDate struct {
	Holiday holiday.Holiday
	Date    calendar.DateTime
}

// =============================================================================
// HOLIDAY ENDPOINTS
// =============================================================================

// ListHolidays returns holidays for a company (plus the global set).
// With ?year=, dates are resolved and holidays that do not occur that
// year are dropped.
// GET /api/holidays?company=acme&year=2024
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := r.URL.Query().Get("company")

	holidays, err := h.Store.ListHolidays(ctx, companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	yearParam := r.URL.Query().Get("year")
	if yearParam == "" {
		dtos := make([]HolidayDTO, 0, len(holidays))
		for _, hd := range holidays {
			dtos = append(dtos, toHolidayDTO(h.Factory, HolidayWithDate{Holiday: hd}))
		}
		writeJSON(w, http.StatusOK, dtos)
		return
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	resolved := holiday.NewCalendar(holidays...).HolidaysIn(year)
	dtos := make([]HolidayDTO, 0, len(resolved))
	for _, res := range resolved {
		dtos = append(dtos, toHolidayDTO(h.Factory, HolidayWithDate{Holiday: res.Holiday, Date: res.Date}))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday creates a holiday from a JSON rule definition.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var hj factory.HolidayJSON
	if err := json.NewDecoder(r.Body).Decode(&hj); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	hol, err := h.Factory.FromJSON(hj)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holiday definition", err)
		return
	}
	if hol.ID == "" {
		hol.ID = uuid.NewString()
	}

	if err := h.Store.SaveHoliday(r.Context(), hol); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, toHolidayDTO(h.Factory, HolidayWithDate{Holiday: hol}))
}

// AddDefaultHolidays seeds the US federal holiday set for a company.
// Seeding is idempotent: names already present (company or global) are
// skipped, so repeat calls neither duplicate nor collide.
// POST /api/holidays/defaults?company=acme
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := r.URL.Query().Get("company")

	existing, err := h.Store.ListHolidays(ctx, companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}
	seen := make(map[string]bool, len(existing))
	for _, hol := range existing {
		seen[hol.Name] = true
	}

	created := make([]HolidayDTO, 0)
	for _, hol := range holiday.USFederalHolidays() {
		if seen[hol.Name] {
			continue
		}
		hol.ID = uuid.NewString()
		hol.CompanyID = companyID
		if err := h.Store.SaveHoliday(ctx, hol); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed holidays", err)
			return
		}
		created = append(created, toHolidayDTO(h.Factory, HolidayWithDate{Holiday: hol}))
	}

	writeJSON(w, http.StatusCreated, created)
}

// DeleteHoliday removes a holiday by ID.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	existing, err := h.Store.GetHoliday(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get holiday", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Holiday not found", nil)
		return
	}

	if err := h.Store.DeleteHoliday(ctx, id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// CALENDAR ENDPOINTS
// =============================================================================

// NthWeekday resolves the n-th weekday of a month.
// GET /api/calendar/nth-weekday?year=2023&month=8&weekday=monday&occurrence=-1
func (h *Handler) NthWeekday(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month (1-12)", err)
		return
	}
	weekday, err := factory.ParseWeekday(q.Get("weekday"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid weekday", err)
		return
	}
	occurrence, err := strconv.Atoi(q.Get("occurrence"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid occurrence", err)
		return
	}

	// Out-of-range occurrences are a not-found result, not an error.
	day, found := calendar.NthWeekdayOfMonth(year, time.Month(month), weekday, occurrence)

	writeJSON(w, http.StatusOK, NthWeekdayResponse{
		Year:       year,
		Month:      month,
		Weekday:    q.Get("weekday"),
		Occurrence: occurrence,
		Found:      found,
		Day:        day,
	})
}

// CompareDates compares two date-bearing operands, date-only.
// POST /api/calendar/compare
func (h *Handler) CompareDates(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	a, err := req.A.toDateBearing()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid operand a", err)
		return
	}
	b, err := req.B.toDateBearing()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid operand b", err)
		return
	}

	ord, err := calendar.Compare(a, b)
	if err != nil {
		if errors.Is(err, calendar.ErrIncompatibleZone) {
			writeError(w, http.StatusBadRequest, "Incompatible time zones", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Comparison failed", err)
		return
	}
	strict, _ := calendar.CompareStrict(a, b)

	writeJSON(w, http.StatusOK, CompareResponse{
		Result:     ord.String(),
		Strict:     strict.String(),
		Equal:      ord == calendar.Equal,
		Before:     ord == calendar.Less,
		OnOrBefore: ord != calendar.Greater,
		After:      ord == calendar.Greater,
		OnOrAfter:  ord != calendar.Less,
	})
}

// Workdays counts working days in a date range for a company calendar.
// GET /api/calendar/workdays?company=acme&from=2023-12-25&to=2023-12-29
func (h *Handler) Workdays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	companyID := q.Get("company")

	from, err := time.Parse("2006-01-02", q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date (use YYYY-MM-DD)", err)
		return
	}
	to, err := time.Parse("2006-01-02", q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date (use YYYY-MM-DD)", err)
		return
	}

	cal, err := holiday.CalendarFor(ctx, h.Store, companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load calendar", err)
		return
	}

	days := cal.WorkingDays(calendar.FromTime(from), calendar.FromTime(to))

	writeJSON(w, http.StatusOK, WorkdaysResponse{
		CompanyID:   companyID,
		From:        q.Get("from"),
		To:          q.Get("to"),
		WorkingDays: days.String(),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
