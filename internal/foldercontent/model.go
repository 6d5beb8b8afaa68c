// Package foldercontent is the grid of records in one scope, with
// multi-selection and batched deletion.
package foldercontent

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/deletion"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/keymap"
	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/media"
	"github.com/llehouerou/iv/internal/selection"
	"github.com/llehouerou/iv/internal/ui"
	"github.com/llehouerou/iv/internal/ui/cursor"
)

// Source is the action source name used for navigation requests.
const Source = "foldercontent"

// cellHeight is the number of lines one grid cell takes: name, meta, gap.
const cellHeight = 3

var _ ui.Screen = (*Model)(nil)

// Items is what the screen needs from the index.
type Items interface {
	ListItems(ctx context.Context, scope index.Scope) []media.Record
	deletion.Requester
}

// LoadedMsg carries item query results tagged with their load generation.
type LoadedMsg struct {
	Gen   uint64
	Items []media.Record
}

// OpenViewer asks the host to open the viewer on Records at Index.
type OpenViewer struct {
	Records []media.Record
	Index   int
	Scope   index.Scope
}

// ActionType implements action.Action.
func (OpenViewer) ActionType() string { return "foldercontent.open_viewer" }

// Config configures the screen.
type Config struct {
	Source Items
	Scope  index.Scope
	Title  string
	Logger logging.Logger
	Ctx    context.Context
}

// Model is the folder contents screen.
type Model struct {
	ui.Base

	ctx    context.Context
	source Items
	scope  index.Scope
	title  string
	logger logging.Logger
	keys   *keymap.Resolver

	items     []media.Record
	loaded    bool
	cursor    cursor.Cursor
	selection selection.State
	deletion  deletion.Workflow

	loadGen    uint64
	cancelLoad context.CancelFunc
}

// New creates the screen. Items are queried by Init.
func New(cfg Config) *Model {
	m := &Model{
		ctx:    cfg.Ctx,
		source: cfg.Source,
		scope:  cfg.Scope,
		title:  cfg.Title,
		logger: cfg.Logger,
		keys:   keymap.ForScreen("items"),
		cursor: cursor.New(1),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.logger == nil {
		m.logger = logging.Nop{}
	}
	return m
}

// Init starts the first item query.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Close abandons any query in flight.
func (m *Model) Close() {
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
}

// Items returns the loaded records, newest first.
func (m *Model) Items() []media.Record {
	return m.items
}

// Len returns the item count, the page bound for a viewer opened here.
func (m *Model) Len() int {
	return len(m.items)
}

// Loaded reports whether a query has completed.
func (m *Model) Loaded() bool {
	return m.loaded
}

// Selection returns the current selection.
func (m *Model) Selection() selection.State {
	return m.selection
}

// Cursor returns the index of the focused item.
func (m *Model) Cursor() int {
	return m.cursor.Pos()
}

// Deletion returns the deletion workflow phase.
func (m *Model) Deletion() deletion.Phase {
	return m.deletion.Phase()
}

// SetSize resizes the grid and keeps the cursor in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Clamp(len(m.items), m.columns(), m.rows())
}

func (m *Model) columns() int {
	return max(m.Width()/ui.CellWidth, 1)
}

func (m *Model) rows() int {
	return max(m.BodyHeight(ui.ScreenOverhead)/cellHeight, 1)
}

// load queries the scope, superseding any query in flight.
func (m *Model) load() tea.Cmd {
	if m.source == nil {
		return nil
	}
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelLoad = cancel
	m.loadGen++

	gen, scope, source := m.loadGen, m.scope, m.source
	return func() tea.Msg {
		return LoadedMsg{Gen: gen, Items: source.ListItems(ctx, scope)}
	}
}

func (m *Model) ids() []int64 {
	ids := make([]int64, len(m.items))
	for i, r := range m.items {
		ids[i] = r.ID
	}
	return ids
}
