package state

import (
	"sync"

	"github.com/llehouerou/iv/internal/media"
)

// Mock is a test double for Manager.
type Mock struct {
	mu      sync.Mutex
	filter  media.TypeFilter
	saveErr error
	saves   []media.TypeFilter
	closed  bool
}

// NewMock creates a mock preference store holding filter.
func NewMock(filter media.TypeFilter) *Mock {
	return &Mock{filter: filter}
}

func (m *Mock) LoadTypeFilter() (media.TypeFilter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter, nil
}

func (m *Mock) SaveTypeFilter(f media.TypeFilter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.filter = f
	m.saves = append(m.saves, f)
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *Mock) Saves() []media.TypeFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]media.TypeFilter(nil), m.saves...)
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
