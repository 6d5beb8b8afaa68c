package viewer

import (
	"context"
	"errors"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/deletion"
	"github.com/llehouerou/iv/internal/errmsg"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/keymap"
	"github.com/llehouerou/iv/internal/media"
	"github.com/llehouerou/iv/internal/ui/action"
)

// Update handles messages for the viewer.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.enterBackground()
	case tea.FocusMsg:
		return m.enterForeground()
	case PollTickMsg:
		return m.handlePoll(msg)
	case ScrubMsg:
		m.scrub(msg.Fraction)
	case ScrubEndMsg:
		m.seekFraction(msg.Fraction)
	case CopiedMsg:
		if msg.Err != nil {
			return action.Cmd(Source, action.Failed{Op: errmsg.OpCopyInfo, Err: msg.Err})
		}
		m.notice = "copied " + strings.ToLower(msg.Label)
	case deletion.ResolvedMsg:
		return m.handleResolved(msg)
	case index.ChangedMsg:
		return m.reload()
	case ItemsLoadedMsg:
		if msg.Gen != m.loadGen {
			return nil
		}
		m.cancelLoad = nil
		return m.setItems(msg.Items)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	act := m.keys.Resolve(key)
	m.notice = ""
	if act == keymap.ActionBack {
		return action.Cmd(Source, action.Back{})
	}
	if m.Empty() {
		return nil
	}

	switch act {
	case keymap.ActionPlayPause:
		return m.togglePlay()
	case keymap.ActionNextPage:
		return m.SetPage(m.page + 1)
	case keymap.ActionPrevPage:
		return m.SetPage(m.page - 1)
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionScrubFraction:
		m.seekFraction(float64(key[0]-'0') / 10)
	case keymap.ActionToggleChrome:
		m.chrome = !m.chrome
	case keymap.ActionToggleInfo:
		m.info = !m.info
	case keymap.ActionMoveUp:
		m.moveInfo(-1)
	case keymap.ActionMoveDown:
		m.moveInfo(1)
	case keymap.ActionCopyInfo:
		return m.copyInfo()
	case keymap.ActionToggleAwake:
		m.keepAwake = !m.keepAwake
	case keymap.ActionDelete:
		return m.requestDeletion()
	}
	return nil
}

// handleMouse turns a left-button drag started on the progress bar into a
// scrub, released where the button comes up.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.adapter == nil || !m.chrome {
		return
	}
	width := m.barWidth()
	fraction := float64(min(max(msg.X, 0), width-1)) / float64(max(width-1, 1))
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && msg.Y == m.Height()-1 && msg.X < width {
			m.scrub(fraction)
		}
	case tea.MouseActionMotion:
		if m.scrubbing {
			m.scrub(fraction)
		}
	case tea.MouseActionRelease:
		if m.scrubbing {
			m.seekFraction(fraction)
		}
	}
}

func (m *Model) moveInfo(delta int) {
	if !m.info {
		return
	}
	n := len(media.Details(m.items[m.page]))
	m.infoRow = min(max(min(m.infoRow, n-1)+delta, 0), n-1)
}

// copyInfo copies the focused info value. It does nothing while the panel
// is hidden.
func (m *Model) copyInfo() tea.Cmd {
	d, ok := m.FocusedDetail()
	if !m.info || !ok {
		return nil
	}
	clip := m.clip
	return func() tea.Msg {
		return CopiedMsg{Label: d.Label, Err: clip.Copy(d.Value)}
	}
}

// SetPage moves to page i. Out of range or unchanged pages are ignored.
func (m *Model) SetPage(i int) tea.Cmd {
	if i < 0 || i >= len(m.items) || i == m.page {
		return nil
	}
	return m.enterPage(i)
}

func (m *Model) requestDeletion() tea.Cmd {
	rec := m.items[m.page]
	cmd, err := m.deletion.Begin(m.ctx, m.source, []string{rec.URI})
	if err != nil {
		if !errors.Is(err, deletion.ErrInFlight) {
			m.logger.Warn("deletion not started", "uri", rec.URI, "err", err)
		}
		return nil
	}
	return cmd
}

func (m *Model) handleResolved(msg deletion.ResolvedMsg) tea.Cmd {
	outcome, ok := m.deletion.Resolve(msg)
	if !ok || outcome != deletion.Confirmed {
		return nil
	}
	return func() tea.Msg { return index.ChangedMsg{} }
}

// reload re-queries the viewer's scope, superseding any reload in flight.
func (m *Model) reload() tea.Cmd {
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
		return ItemsLoadedMsg{Gen: gen, Items: source.ListItems(ctx, scope)}
	}
}

// setItems replaces the list. The page follows the current record when it
// is still listed, keeping its adapter; otherwise it is clamped into range.
func (m *Model) setItems(items []media.Record) tea.Cmd {
	cur, hadCurrent := m.Current()
	m.items = items
	if len(items) == 0 {
		m.releaseAdapter()
		m.page = 0
		m.unavailable = false
		return action.Cmd(Source, Emptied{})
	}
	if hadCurrent {
		if i := slices.IndexFunc(items, func(r media.Record) bool { return r.ID == cur.ID }); i >= 0 {
			m.page = i
			return nil
		}
	}
	return m.enterPage(clampPage(m.page, len(items)))
}
