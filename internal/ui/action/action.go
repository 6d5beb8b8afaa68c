// Package action defines the interface for UI component actions.
package action

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/errmsg"
)

// Action represents an action from a UI component.
// The ActionType method returns a string identifier for logging/debugging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// This is the standard way for screens to ask the app to navigate.
type Msg struct {
	Source string // Component name: "folderlist", "foldercontent", "viewer", "confirm"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Back asks the app to pop the current screen.
type Back struct{}

// ActionType implements Action.
func (Back) ActionType() string { return "back" }

// Failed reports an error the user should see.
type Failed struct {
	Op  errmsg.Op
	Err error
}

// ActionType implements Action.
func (Failed) ActionType() string { return "failed" }

// Cmd returns a command emitting a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
