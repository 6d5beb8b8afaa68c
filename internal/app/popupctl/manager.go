// Package popupctl owns the modal popups drawn over the screen stack.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/ui/confirm"
	"github.com/llehouerou/iv/internal/ui/popup"
	"github.com/llehouerou/iv/internal/ui/styles"
)

// Manager manages the confirmation and error popups.
type Manager struct {
	confirm  *confirm.Model
	errorMsg string
	width    int
	height   int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.confirm != nil {
		p.confirm.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case Error:
		return p.errorMsg != ""
	case Confirm:
		return p.confirm != nil && p.confirm.Active()
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// ShowConfirm displays a yes/no dialog. context comes back in the
// confirm.Result.
func (p *Manager) ShowConfirm(title, message string, context any) {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	p.confirm = &c
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch p.ActivePopup() {
	case Error:
		// Dismiss on any key
		p.errorMsg = ""
		return true, nil
	case Confirm:
		_, cmd := p.confirm.Update(msg)
		if !p.confirm.Active() {
			p.confirm = nil
		}
		return true, cmd
	}
	return false, nil
}

// RenderOverlay renders active popups on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		var content string
		switch t {
		case Error:
			content = p.renderError()
		case Confirm:
			content = p.confirm.View()
		}
		base = popup.Compose(base, popup.RenderBordered(content, p.width, p.height), p.width)
	}
	return base
}

func (p *Manager) renderError() string {
	s := styles.T().S()
	return s.Error.Bold(true).Render("Error") + "\n\n" +
		s.Base.Render(p.errorMsg) + "\n\n" +
		s.Subtle.Render("Press any key to dismiss")
}
