/*
store.go - Persistence interface for holidays

PURPOSE:
  Defines the interface between the holiday domain and the database.
  Implementations exist for SQLite (store/sqlite) and in-memory
  (holiday/store, used in tests and dev).

COMPANY SCOPING:
  Holidays with CompanyID "" are global. ListHolidays(ctx, companyID)
  returns the company's own holidays plus the global ones, which is what
  CalendarFor needs to build a complete calendar.
*/
package holiday

import "context"

// Store persists holidays.
type Store interface {
	// SaveHoliday inserts or updates a holiday by ID.
	SaveHoliday(ctx context.Context, h Holiday) error

	// GetHoliday returns the holiday with the given ID, or nil when absent.
	GetHoliday(ctx context.Context, id string) (*Holiday, error)

	// ListHolidays returns the company's holidays plus the global set,
	// in stable order.
	ListHolidays(ctx context.Context, companyID string) ([]Holiday, error)

	// DeleteHoliday removes a holiday by ID. Deleting an absent ID is not
	// an error.
	DeleteHoliday(ctx context.Context, id string) error
}

// CalendarFor loads a company's effective calendar from the store.
func CalendarFor(ctx context.Context, s Store, companyID string) (*Calendar, error) {
	holidays, err := s.ListHolidays(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return NewCalendar(holidays...), nil
}
