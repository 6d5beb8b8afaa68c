// Package viewer is the full-screen pager over a list of records. It owns at
// most one playback adapter, tied to the current page, and keeps it in step
// with the user's play intent and the terminal's focus.
package viewer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/clipboard"
	"github.com/llehouerou/iv/internal/deletion"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/keymap"
	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/media"
	"github.com/llehouerou/iv/internal/player"
	"github.com/llehouerou/iv/internal/ui"
)

// Source is the action source name used for navigation requests.
const Source = "viewer"

const (
	defaultPollInterval = time.Second
	seekStep            = 5 * time.Second
)

// Compile-time check that Model implements ui.Screen.
var _ ui.Screen = (*Model)(nil)

// Items is what the viewer needs from the index.
type Items interface {
	ListItems(ctx context.Context, scope index.Scope) []media.Record
	deletion.Requester
}

// Config configures a viewer.
type Config struct {
	Source Items
	// Scope is re-queried after the index changes.
	Scope index.Scope
	// Records and Start are the list and tapped position of the screen that
	// opened the viewer.
	Records []media.Record
	Start   int
	Factory player.Factory
	// PollInterval defaults to one second.
	PollInterval time.Duration
	// AutoPlay is the initial play intent.
	AutoPlay bool
	// Clipboard receives copied info values. Defaults to a no-op.
	Clipboard clipboard.Writer
	Logger    logging.Logger
	Ctx      context.Context
}

// Model is the viewer screen.
type Model struct {
	ui.Base

	ctx      context.Context
	source   Items
	scope    index.Scope
	factory  player.Factory
	clip     clipboard.Writer
	logger   logging.Logger
	keys     *keymap.Resolver
	interval time.Duration

	items []media.Record
	page  int

	// adapter is nil unless the current page is a video that prepared.
	adapter     player.Adapter
	unavailable bool
	playing     bool
	background  bool
	wasPlaying  bool

	polling bool
	pollGen uint64

	position    time.Duration
	duration    time.Duration
	scrubbing   bool
	pendingSeek *time.Duration

	chrome    bool
	info      bool
	infoRow   int
	keepAwake bool
	notice    string

	deletion   deletion.Workflow
	loadGen    uint64
	cancelLoad context.CancelFunc

	bar progress.Model
}

// New creates a viewer positioned on cfg.Start, clamped into the list.
// No adapter is created before Init.
func New(cfg Config) *Model {
	m := &Model{
		ctx:      cfg.Ctx,
		source:   cfg.Source,
		scope:    cfg.Scope,
		factory:  cfg.Factory,
		clip:     cfg.Clipboard,
		logger:   cfg.Logger,
		keys:     keymap.ForScreen("viewer"),
		interval: cfg.PollInterval,
		items:    cfg.Records,
		playing:  cfg.AutoPlay,
		chrome:   true,
		bar:      progress.New(progress.WithoutPercentage(), progress.WithSolidFill("#a78bfa")),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.logger == nil {
		m.logger = logging.Nop{}
	}
	if m.clip == nil {
		m.clip = clipboard.Nop{}
	}
	if m.interval <= 0 {
		m.interval = defaultPollInterval
	}
	m.page = clampPage(cfg.Start, len(m.items))
	return m
}

// Init prepares the starting page.
func (m *Model) Init() tea.Cmd {
	if m.Empty() {
		return nil
	}
	return m.enterPage(m.page)
}

// Close releases the adapter and abandons any reload.
func (m *Model) Close() {
	m.releaseAdapter()
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
}

// Empty reports that there is no valid page.
func (m *Model) Empty() bool {
	return len(m.items) == 0
}

// Page returns the current page index.
func (m *Model) Page() int {
	return m.page
}

// Len returns the number of pages.
func (m *Model) Len() int {
	return len(m.items)
}

// Current returns the record on the current page.
func (m *Model) Current() (media.Record, bool) {
	if m.Empty() {
		return media.Record{}, false
	}
	return m.items[m.page], true
}

// Playing returns the user's play intent.
func (m *Model) Playing() bool {
	return m.playing
}

// Polling reports whether position sampling is running.
func (m *Model) Polling() bool {
	return m.polling
}

// Active reports whether the current page has a prepared adapter.
func (m *Model) Active() bool {
	return m.adapter != nil
}

// Position returns the last published position.
func (m *Model) Position() time.Duration {
	return m.position
}

// Duration returns the last published duration, zero while unknown.
func (m *Model) Duration() time.Duration {
	return m.duration
}

// Progress returns position/duration in [0, 1], or 0 while the duration is
// unknown.
func (m *Model) Progress() float64 {
	if m.duration <= 0 {
		return 0
	}
	return min(max(float64(m.position)/float64(m.duration), 0), 1)
}

// KeepAwake reports whether the user asked to keep the display awake.
func (m *Model) KeepAwake() bool {
	return m.keepAwake
}

// Chrome reports whether the toolbar is visible.
func (m *Model) Chrome() bool {
	return m.chrome
}

// InfoVisible reports whether the info panel is visible.
func (m *Model) InfoVisible() bool {
	return m.info
}

// FocusedDetail returns the info line y would copy.
func (m *Model) FocusedDetail() (media.Detail, bool) {
	rec, ok := m.Current()
	if !ok {
		return media.Detail{}, false
	}
	details := media.Details(rec)
	return details[min(m.infoRow, len(details)-1)], true
}

// Notice returns the transient status shown in the header.
func (m *Model) Notice() string {
	return m.notice
}

func clampPage(page, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(page, 0), n-1)
}
