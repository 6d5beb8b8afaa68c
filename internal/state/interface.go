package state

import "github.com/llehouerou/iv/internal/media"

// Interface defines the preference store contract for dependency injection and testing.
type Interface interface {
	LoadTypeFilter() (media.TypeFilter, error)
	SaveTypeFilter(f media.TypeFilter) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
