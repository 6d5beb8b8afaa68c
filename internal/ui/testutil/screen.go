package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/ui"
)

// ScreenHarness drives a ui.Screen by hand. Commands are never run in the
// background: tests decide when to execute them with Deliver, which makes
// ordering of async results deterministic.
type ScreenHarness struct {
	Screen ui.Screen
	// Seen records every message delivered to the screen.
	Seen []tea.Msg
}

// NewScreenHarness sizes the screen and returns the harness together with
// the screen's Init command.
func NewScreenHarness(s ui.Screen, width, height int) (*ScreenHarness, tea.Cmd) {
	s.SetSize(width, height)
	return &ScreenHarness{Screen: s}, s.Init()
}

// Send passes msg to the screen and returns the resulting command.
func (h *ScreenHarness) Send(msg tea.Msg) tea.Cmd {
	h.Seen = append(h.Seen, msg)
	return h.Screen.Update(msg)
}

// Key sends a key press by name.
func (h *ScreenHarness) Key(name string) tea.Cmd {
	return h.Send(Key(name))
}

// Deliver runs cmd, sends every message it yields back to the screen and
// returns the commands produced in response, batched. It returns the
// messages that were delivered so callers can assert on them.
func (h *ScreenHarness) Deliver(cmd tea.Cmd) ([]tea.Msg, tea.Cmd) {
	msgs := Flatten(cmd)
	var next []tea.Cmd
	for _, msg := range msgs {
		if c := h.Send(msg); c != nil {
			next = append(next, c)
		}
	}
	return msgs, tea.Batch(next...)
}

// Drain delivers cmd and everything it produces until no command is left or
// rounds are exhausted. Messages matching stop are not delivered; they are
// collected and returned instead, which lets a test intercept app-level
// messages such as navigation requests.
func (h *ScreenHarness) Drain(cmd tea.Cmd, rounds int, stop func(tea.Msg) bool) []tea.Msg {
	var held []tea.Msg
	for range rounds {
		if cmd == nil {
			break
		}
		var next []tea.Cmd
		for _, msg := range Flatten(cmd) {
			if stop != nil && stop(msg) {
				held = append(held, msg)
				continue
			}
			if c := h.Send(msg); c != nil {
				next = append(next, c)
			}
		}
		cmd = tea.Batch(next...)
	}
	return held
}

// View returns the screen's rendered output with styles stripped.
func (h *ScreenHarness) View() string {
	return StripANSI(h.Screen.View())
}
