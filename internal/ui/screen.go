package ui

import tea "github.com/charmbracelet/bubbletea"

// Screen is one page of the navigation stack.
type Screen interface {
	// Init returns the screen's first command (usually its initial query).
	Init() tea.Cmd

	// Update handles messages and returns the command to run next.
	// Screens receive every non-key message; they ignore what is not theirs.
	Update(msg tea.Msg) tea.Cmd

	// View renders the screen.
	View() string

	// SetSize sets the available dimensions for the screen.
	SetSize(width, height int)

	// Close releases what the screen holds when it is popped.
	Close()
}
