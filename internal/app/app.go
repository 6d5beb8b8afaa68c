// Package app is the root bubbletea model: a stack of screens, the popups
// drawn over them and the routing of messages between the two.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/app/navctl"
	"github.com/llehouerou/iv/internal/app/popupctl"
	"github.com/llehouerou/iv/internal/awake"
	"github.com/llehouerou/iv/internal/clipboard"
	"github.com/llehouerou/iv/internal/folderlist"
	"github.com/llehouerou/iv/internal/foldercontent"
	"github.com/llehouerou/iv/internal/keymap"
	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/player"
	"github.com/llehouerou/iv/internal/viewer"
)

// Index is the media index as seen by every screen. *index.Client
// satisfies it.
type Index interface {
	folderlist.Folders
	foldercontent.Items
}

// Deps are the collaborators of the application.
type Deps struct {
	Index   Index
	Prefs   folderlist.Prefs
	Factory player.Factory
	Logger  logging.Logger
	// Awake keeps the display on while a viewer asks for it.
	Awake awake.Inhibitor
	// Clipboard receives info values copied in the viewer.
	Clipboard clipboard.Writer
	// PollInterval is the viewer's position sampling interval.
	PollInterval time.Duration
	// AutoPlay is the play intent a viewer starts with.
	AutoPlay bool
}

// Model is the root application model.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	deps   Deps
	keys   *keymap.Resolver

	awakeHeld bool

	Navigation *navctl.Manager
	Popups     *popupctl.Manager

	Width  int
	Height int
}

// New creates the application with the folder list as its root screen.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = logging.Nop{}
	}
	if deps.Awake == nil {
		deps.Awake = awake.Nop{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		ctx:        ctx,
		cancel:     cancel,
		deps:       deps,
		keys:       keymap.NewResolver(keymap.ByContext("global")),
		Navigation: navctl.New(),
		Popups:     popupctl.New(),
	}
	m.Navigation.Push(navctl.ViewFolders, folderlist.New(folderlist.Config{
		Source: deps.Index,
		Prefs:  deps.Prefs,
		Logger: deps.Logger,
		Ctx:    ctx,
	}))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Navigation.Top().Init()
}

// Close releases every screen and cancels outstanding queries.
func (m Model) Close() {
	m.Navigation.CloseAll()
	m.cancel()
	if err := m.deps.Awake.Release(); err != nil {
		m.deps.Logger.Warn("screensaver release failed", "err", err)
	}
}

// KeepAwake reports whether the viewer on top asked to keep the display on.
func (m Model) KeepAwake() bool {
	v, ok := m.Navigation.Top().(*viewer.Model)
	return ok && v.KeepAwake()
}

func (m Model) openContents(a foldercontent.Config) tea.Cmd {
	a.Source, a.Logger, a.Ctx = m.deps.Index, m.deps.Logger, m.ctx
	s := foldercontent.New(a)
	m.Navigation.Push(navctl.ViewContents, s)
	return s.Init()
}

func (m Model) openViewer(open foldercontent.OpenViewer) tea.Cmd {
	v := viewer.New(viewer.Config{
		Source:       m.deps.Index,
		Scope:        open.Scope,
		Records:      open.Records,
		Start:        open.Index,
		Factory:      m.deps.Factory,
		PollInterval: m.deps.PollInterval,
		AutoPlay:     m.deps.AutoPlay,
		Clipboard:    m.deps.Clipboard,
		Logger:       m.deps.Logger,
		Ctx:          m.ctx,
	})
	m.Navigation.Push(navctl.ViewViewer, v)
	return v.Init()
}
