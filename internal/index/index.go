// Package index is the typed query facade over the external content index.
//
// The index itself (Index) is an external collaborator: it stores records,
// answers folder and item queries and issues deletion capabilities. Client
// turns its rows into media values and absorbs query failures, so callers see
// an empty result rather than an error.
package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/llehouerou/iv/internal/media"
)

// ErrUnknownURI is returned when a deletion names a uri the index does not know.
var ErrUnknownURI = errors.New("unknown media uri")

// FolderRow is one record as seen by a folder query.
type FolderRow struct {
	FolderID   int64
	FolderName string
	ItemID     int64
	Kind       media.Kind
	URI        string
}

// ItemRow is one record as seen by an item query.
type ItemRow struct {
	ID         int64
	Size       int64
	DateAdded  int64
	DurationMs int64
	Name       string
	MimeType   string
	URI        string
	Width      int
	Height     int
	FolderID   int64
	FolderName string
	Kind       media.Kind
}

// Index is the external content index. Rows are returned newest first
// (date added descending, ties broken by id descending).
type Index interface {
	QueryFolders(ctx context.Context, filter media.TypeFilter) ([]FolderRow, error)
	// QueryItems returns every matching record when folderID is nil.
	QueryItems(ctx context.Context, folderID *int64, filter media.TypeFilter) ([]ItemRow, error)
	CreateDeletionRequest(ctx context.Context, uris []string) (DeletionRequest, error)
}

// DeletionRequest is an opaque, host-confirmable capability to remove records.
// Commit applies the removal; a request that is never committed changes nothing.
type DeletionRequest interface {
	URIs() []string
	Commit(ctx context.Context) error
}

// Scope identifies one item query: a folder (or the whole library) under a filter.
type Scope struct {
	Folder *int64
	Filter media.TypeFilter
}

// Library returns the library-wide scope.
func Library(filter media.TypeFilter) Scope {
	return Scope{Filter: filter}
}

// InFolder returns the scope of a single folder.
func InFolder(folderID int64, filter media.TypeFilter) Scope {
	return Scope{Folder: &folderID, Filter: filter}
}

// Equal reports whether both scopes query the same records.
func (s Scope) Equal(o Scope) bool {
	if s.Filter != o.Filter {
		return false
	}
	if s.Folder == nil || o.Folder == nil {
		return s.Folder == nil && o.Folder == nil
	}
	return *s.Folder == *o.Folder
}

func (s Scope) String() string {
	if s.Folder == nil {
		return "library/" + s.Filter.String()
	}
	return fmt.Sprintf("folder:%d/%s", *s.Folder, s.Filter)
}

// ChangedMsg is emitted after the index was mutated through a confirmed
// deletion. Screens holding query results re-run their queries.
type ChangedMsg struct{}
