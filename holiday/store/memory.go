// Package store provides an in-memory holiday.Store for testing and dev.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/calendar-engine/holiday"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	holidays map[string]holiday.Holiday
}

func NewMemory() *Memory {
	return &Memory{holidays: make(map[string]holiday.Holiday)}
}

var _ holiday.Store = (*Memory)(nil)

// SaveHoliday inserts or replaces a holiday by ID.
func (m *Memory) SaveHoliday(_ context.Context, h holiday.Holiday) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holidays[h.ID] = h
	return nil
}

// GetHoliday returns the holiday with the given ID, or nil.
func (m *Memory) GetHoliday(_ context.Context, id string) (*holiday.Holiday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.holidays[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

// ListHolidays returns the company's holidays plus the global set, sorted
// by name for stable output.
func (m *Memory) ListHolidays(_ context.Context, companyID string) ([]holiday.Holiday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []holiday.Holiday
	for _, h := range m.holidays {
		if h.CompanyID == companyID || h.CompanyID == "" {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteHoliday removes a holiday; absent IDs are a no-op.
func (m *Memory) DeleteHoliday(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.holidays, id)
	return nil
}
