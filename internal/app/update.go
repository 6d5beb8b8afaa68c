package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/app/navctl"
	"github.com/llehouerou/iv/internal/deletion"
	"github.com/llehouerou/iv/internal/errmsg"
	"github.com/llehouerou/iv/internal/folderlist"
	"github.com/llehouerou/iv/internal/foldercontent"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/keymap"
	"github.com/llehouerou/iv/internal/ui/action"
	"github.com/llehouerou/iv/internal/ui/confirm"
	"github.com/llehouerou/iv/internal/viewer"
)

// Update handles messages and returns updated model and commands.
//
// Keys go to the active popup, then to the top screen only. Every other
// message is broadcast to the whole stack: screens ignore what they did not
// ask for, and index.ChangedMsg reaches every screen holding query results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncAwake()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Navigation.SetSize(msg.Width, msg.Height)
		m.Popups.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case deletion.ConfirmMsg:
		n := len(msg.Request.URIs())
		m.Popups.ShowConfirm("Delete media", deletePrompt(n), msg)
		return m, nil

	case action.Msg:
		return m, m.handleAction(msg)

	case deletion.ResolvedMsg:
		if msg.Err != nil {
			m.deps.Logger.Warn("deletion not applied", "err", msg.Err)
			m.Popups.ShowError(errmsg.Format(errmsg.OpDeleteCommit, msg.Err))
		}
		return m, m.broadcast(msg)

	case index.ChangedMsg:
		m.deps.Logger.Debug("index changed, reloading screens", "depth", m.Navigation.Depth())
		return m, m.broadcast(msg)
	}
	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}
	if m.keys.Resolve(msg.String()) == keymap.ActionQuit {
		m.Close()
		return m, tea.Quit
	}
	return m, m.Navigation.Top().Update(msg)
}

// syncAwake holds the screensaver inhibition exactly while the viewer on top
// asks for it.
func (m *Model) syncAwake() {
	want := m.KeepAwake()
	if want == m.awakeHeld {
		return
	}
	var err error
	if want {
		err = m.deps.Awake.Inhibit("viewing media")
	} else {
		err = m.deps.Awake.Release()
	}
	if err != nil {
		m.deps.Logger.Warn("screensaver inhibition failed", "keep_awake", want, "err", err)
	}
	m.awakeHeld = want
}

func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	screens := m.Navigation.Screens()
	cmds := make([]tea.Cmd, 0, len(screens))
	for _, s := range screens {
		cmds = append(cmds, s.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case confirm.Result:
		c, ok := a.Context.(deletion.ConfirmMsg)
		if !ok {
			return nil
		}
		if a.Confirmed {
			return deletion.CommitCmd(m.ctx, c, m.deps.Logger)
		}
		return deletion.CancelCmd(c)

	case action.Back:
		m.Navigation.Pop()

	case viewer.Emptied:
		if m.Navigation.ViewMode() == navctl.ViewViewer {
			m.Navigation.Pop()
		}

	case action.Failed:
		m.Popups.ShowError(errmsg.Format(a.Op, a.Err))

	case folderlist.OpenFolder:
		return m.openContents(foldercontent.Config{Scope: a.Scope, Title: a.Title})

	case foldercontent.OpenViewer:
		if len(a.Records) == 0 {
			return nil
		}
		return m.openViewer(a)
	}
	return nil
}

func deletePrompt(n int) string {
	if n == 1 {
		return "Delete 1 item?"
	}
	return fmt.Sprintf("Delete %d items?", n)
}
