package index

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/llehouerou/iv/internal/media"
)

// Mock is an in-memory Index for tests.
type Mock struct {
	mu          sync.Mutex
	rows        []ItemRow
	queryErr    error
	createErr   error
	commitErr   error
	folderCalls int
	itemCalls   int
	createCalls [][]string
	commitCalls int
}

// NewMock creates a mock index holding rows.
func NewMock(rows ...ItemRow) *Mock {
	return &Mock{rows: slices.Clone(rows)}
}

func (m *Mock) QueryFolders(ctx context.Context, filter media.TypeFilter) ([]FolderRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.folderCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []FolderRow
	for _, r := range m.sorted() {
		if filter.Matches(r.Kind) {
			out = append(out, FolderRow{
				FolderID:   r.FolderID,
				FolderName: r.FolderName,
				ItemID:     r.ID,
				Kind:       r.Kind,
				URI:        r.URI,
			})
		}
	}
	return out, nil
}

func (m *Mock) QueryItems(ctx context.Context, folderID *int64, filter media.TypeFilter) ([]ItemRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itemCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []ItemRow
	for _, r := range m.sorted() {
		if !filter.Matches(r.Kind) {
			continue
		}
		if folderID != nil && r.FolderID != *folderID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *Mock) CreateDeletionRequest(_ context.Context, uris []string) (DeletionRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls = append(m.createCalls, slices.Clone(uris))
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &mockRequest{mock: m, uris: slices.Clone(uris)}, nil
}

func (m *Mock) sorted() []ItemRow {
	rows := slices.Clone(m.rows)
	slices.SortStableFunc(rows, func(a, b ItemRow) int {
		if c := cmp.Compare(b.DateAdded, a.DateAdded); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return rows
}

type mockRequest struct {
	mock *Mock
	uris []string
}

func (r *mockRequest) URIs() []string { return slices.Clone(r.uris) }

func (r *mockRequest) Commit(_ context.Context) error {
	m := r.mock
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commitCalls++
	if m.commitErr != nil {
		return m.commitErr
	}
	m.rows = slices.DeleteFunc(m.rows, func(row ItemRow) bool {
		return slices.Contains(r.uris, row.URI)
	})
	return nil
}

// Test helpers

func (m *Mock) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryErr = err
}

func (m *Mock) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErr = err
}

func (m *Mock) SetCommitError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commitErr = err
}

func (m *Mock) SetRows(rows ...ItemRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = slices.Clone(rows)
}

func (m *Mock) FolderQueries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.folderCalls
}

func (m *Mock) ItemQueries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.itemCalls
}

func (m *Mock) DeletionRequests() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.createCalls)
}

func (m *Mock) Commits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commitCalls
}

func (m *Mock) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// Verify Mock implements Index at compile time.
var _ Index = (*Mock)(nil)

// Fixtures

// ImageRow returns a minimal image row named after its id.
func ImageRow(id, folderID, dateAdded int64) ItemRow {
	return ItemRow{
		ID:         id,
		DateAdded:  dateAdded,
		Name:       fmt.Sprintf("img%d.jpg", id),
		MimeType:   "image/jpeg",
		URI:        fmt.Sprintf("media://image/%d", id),
		Width:      640,
		Height:     480,
		Size:       1024,
		FolderID:   folderID,
		FolderName: fmt.Sprintf("folder%d", folderID),
		Kind:       media.KindImage,
	}
}

// VideoRow returns a minimal video row lasting durationMs.
func VideoRow(id, folderID, dateAdded, durationMs int64) ItemRow {
	return ItemRow{
		ID:         id,
		DateAdded:  dateAdded,
		DurationMs: durationMs,
		Name:       fmt.Sprintf("vid%d.mp4", id),
		MimeType:   "video/mp4",
		URI:        fmt.Sprintf("media://video/%d", id),
		Width:      1920,
		Height:     1080,
		Size:       4096,
		FolderID:   folderID,
		FolderName: fmt.Sprintf("folder%d", folderID),
		Kind:       media.KindVideo,
	}
}
