// Package folderlist is the entry screen: the folders holding media under the
// current type filter, plus a library-wide entry.
package folderlist

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/errmsg"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/keymap"
	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/media"
	"github.com/llehouerou/iv/internal/ui"
	"github.com/llehouerou/iv/internal/ui/action"
	"github.com/llehouerou/iv/internal/ui/cursor"
)

// Source is the action source name used for navigation requests.
const Source = "folderlist"

// AllMediaTitle names the library-wide entry.
const AllMediaTitle = "All media"

var _ ui.Screen = (*Model)(nil)

// Folders is what the screen needs from the index.
type Folders interface {
	ListFolders(ctx context.Context, filter media.TypeFilter) []media.Folder
}

// Prefs persists the type filter. state.Interface satisfies it.
type Prefs interface {
	LoadTypeFilter() (media.TypeFilter, error)
	SaveTypeFilter(f media.TypeFilter) error
}

// LoadedMsg carries folder query results tagged with their load generation.
type LoadedMsg struct {
	Gen     uint64
	Folders []media.Folder
}

// OpenFolder asks the host to show the contents of Scope.
type OpenFolder struct {
	Scope index.Scope
	Title string
}

// ActionType implements action.Action.
func (OpenFolder) ActionType() string { return "folderlist.open" }

// Config configures the folder list.
type Config struct {
	Source Folders
	Prefs  Prefs
	Logger logging.Logger
	Ctx    context.Context
}

// Model is the folder list screen.
type Model struct {
	ui.Base

	ctx    context.Context
	source Folders
	prefs  Prefs
	logger logging.Logger
	keys   *keymap.Resolver

	filter  media.TypeFilter
	folders []media.Folder
	total   int
	loaded  bool
	cursor  cursor.Cursor

	loadGen    uint64
	cancelLoad context.CancelFunc
}

// New creates the folder list with the persisted filter.
func New(cfg Config) *Model {
	m := &Model{
		ctx:    cfg.Ctx,
		source: cfg.Source,
		prefs:  cfg.Prefs,
		logger: cfg.Logger,
		keys:   keymap.ForScreen("folders"),
		cursor: cursor.New(ui.ScrollMargin),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.logger == nil {
		m.logger = logging.Nop{}
	}
	if m.prefs != nil {
		f, err := m.prefs.LoadTypeFilter()
		if err != nil {
			m.logger.Warn("type filter unreadable, using default", "err", err)
		}
		m.filter = f
	}
	return m
}

// Init starts the first folder query.
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

// Filter returns the current type filter.
func (m *Model) Filter() media.TypeFilter {
	return m.filter
}

// Folders returns the loaded folders.
func (m *Model) Folders() []media.Folder {
	return m.folders
}

// Loaded reports whether a query has completed.
func (m *Model) Loaded() bool {
	return m.loaded
}

// Cursor returns the selected entry index; 0 is the library-wide entry.
func (m *Model) Cursor() int {
	return m.cursor.Pos()
}

// entries counts the rows: the library entry plus one per folder, or none.
func (m *Model) entries() int {
	if len(m.folders) == 0 {
		return 0
	}
	return len(m.folders) + 1
}

func (m *Model) listHeight() int {
	return m.BodyHeight(ui.ScreenOverhead)
}

// Update handles messages for the folder list.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case LoadedMsg:
		if msg.Gen != m.loadGen {
			return nil
		}
		m.cancelLoad = nil
		m.loaded = true
		m.folders = msg.Folders
		m.total = media.Total(msg.Folders)
		m.cursor.Clamp(m.entries(), 1, m.listHeight())
	case index.ChangedMsg:
		return m.load()
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n, rows := m.entries(), m.listHeight()
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, 1, rows)
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, 1, rows)
	case keymap.ActionJumpStart:
		m.cursor.Jump(0, n, 1, rows)
	case keymap.ActionJumpEnd:
		m.cursor.Jump(n-1, n, 1, rows)
	case keymap.ActionPageUp:
		m.cursor.Move(-rows, n, 1, rows)
	case keymap.ActionPageDown:
		m.cursor.Move(rows, n, 1, rows)
	case keymap.ActionSelect:
		return m.open()
	case keymap.ActionCycleFilter:
		return m.cycleFilter()
	}
	return nil
}

func (m *Model) open() tea.Cmd {
	if m.entries() == 0 {
		return nil
	}
	pos := m.cursor.Pos()
	if pos == 0 {
		return action.Cmd(Source, OpenFolder{Scope: index.Library(m.filter), Title: AllMediaTitle})
	}
	f := m.folders[pos-1]
	return action.Cmd(Source, OpenFolder{Scope: index.InFolder(f.ID, m.filter), Title: f.Name})
}

// cycleFilter advances ALL -> IMAGE -> VIDEO, persists it and re-queries.
// Folders of the previous filter are dropped until the new ones arrive, so
// nothing can be opened under the wrong filter. A failed save keeps the new
// filter for this session.
func (m *Model) cycleFilter() tea.Cmd {
	m.filter = m.filter.Next()
	m.folders, m.total, m.loaded = nil, 0, false
	reload := m.load()
	if m.prefs == nil {
		return reload
	}
	if err := m.prefs.SaveTypeFilter(m.filter); err != nil {
		m.logger.Warn("saving type filter", "filter", m.filter.String(), "err", err)
		return tea.Batch(reload, action.Cmd(Source, action.Failed{Op: errmsg.OpFilterSave, Err: err}))
	}
	return reload
}

// load queries the folders for the current filter, superseding any query in
// flight.
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

	gen, filter, source := m.loadGen, m.filter, m.source
	return func() tea.Msg {
		return LoadedMsg{Gen: gen, Folders: source.ListFolders(ctx, filter)}
	}
}
