package foldercontent

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/deletion"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/keymap"
	"github.com/llehouerou/iv/internal/selection"
	"github.com/llehouerou/iv/internal/ui/action"
)

// Update handles messages for the folder contents screen.
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
		m.items = msg.Items
		m.selection = m.selection.Retain(m.ids())
		m.cursor.Clamp(len(m.items), m.columns(), m.rows())
	case deletion.ResolvedMsg:
		return m.handleResolved(msg)
	case index.ChangedMsg:
		return m.load()
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n, cols, rows := len(m.items), m.columns(), m.rows()

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionMoveLeft:
		m.cursor.Move(-1, n, cols, rows)
	case keymap.ActionMoveRight:
		m.cursor.Move(1, n, cols, rows)
	case keymap.ActionMoveUp:
		m.cursor.MoveRows(-1, n, cols, rows)
	case keymap.ActionMoveDown:
		m.cursor.MoveRows(1, n, cols, rows)
	case keymap.ActionJumpStart:
		m.cursor.Jump(0, n, cols, rows)
	case keymap.ActionJumpEnd:
		m.cursor.Jump(n-1, n, cols, rows)
	case keymap.ActionPageUp:
		m.cursor.MoveRows(-rows, n, cols, rows)
	case keymap.ActionPageDown:
		m.cursor.MoveRows(rows, n, cols, rows)
	case keymap.ActionSelect:
		return m.activate()
	case keymap.ActionToggleSelect:
		m.toggleCurrent()
	case keymap.ActionSelectAll:
		if n > 0 {
			m.selection = m.selection.ToggleAll(m.ids())
		}
	case keymap.ActionDelete:
		return m.requestDeletion()
	case keymap.ActionBack:
		if m.selection.Active() {
			m.selection = selection.Clear()
			return nil
		}
		return action.Cmd(Source, action.Back{})
	}
	return nil
}

// activate opens the focused item, or toggles it while selecting.
func (m *Model) activate() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	if m.selection.Active() {
		m.toggleCurrent()
		return nil
	}
	return action.Cmd(Source, OpenViewer{
		Records: m.items,
		Index:   m.cursor.Pos(),
		Scope:   m.scope,
	})
}

func (m *Model) toggleCurrent() {
	if len(m.items) == 0 {
		return
	}
	id := m.items[m.cursor.Pos()].ID
	if m.selection.Active() {
		m.selection = m.selection.Toggle(id)
	} else {
		m.selection = m.selection.Enter(id)
	}
}

// requestDeletion asks the index for one capability covering the selection,
// in list order. The list itself is left untouched until confirmation.
func (m *Model) requestDeletion() tea.Cmd {
	if !m.selection.Active() {
		return nil
	}
	uris := make([]string, 0, m.selection.Len())
	for _, r := range m.items {
		if m.selection.Contains(r.ID) {
			uris = append(uris, r.URI)
		}
	}
	cmd, err := m.deletion.Begin(m.ctx, m.source, uris)
	if err != nil {
		if !errors.Is(err, deletion.ErrInFlight) {
			m.logger.Warn("deletion not started", "count", len(uris), "err", err)
		}
		return nil
	}
	return cmd
}

// handleResolved finishes this screen's pending deletion. A confirmed
// deletion clears the selection and announces the change; the re-query
// happens when the announcement comes back.
func (m *Model) handleResolved(msg deletion.ResolvedMsg) tea.Cmd {
	outcome, ok := m.deletion.Resolve(msg)
	if !ok || outcome != deletion.Confirmed {
		return nil
	}
	m.selection = selection.Clear()
	return func() tea.Msg { return index.ChangedMsg{} }
}
