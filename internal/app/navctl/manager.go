package navctl

import (
	"github.com/llehouerou/iv/internal/ui"
)

type entry struct {
	mode   ViewMode
	screen ui.Screen
}

// Manager is the screen stack. The bottom screen is never popped.
type Manager struct {
	stack  []entry
	width  int
	height int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{}
}

// SetSize resizes every screen on the stack.
func (n *Manager) SetSize(width, height int) {
	n.width, n.height = width, height
	for _, e := range n.stack {
		e.screen.SetSize(width, height)
	}
}

// Push sizes s and puts it on top.
func (n *Manager) Push(mode ViewMode, s ui.Screen) {
	s.SetSize(n.width, n.height)
	n.stack = append(n.stack, entry{mode: mode, screen: s})
}

// Pop closes and removes the top screen. It returns false when only the root
// screen is left.
func (n *Manager) Pop() bool {
	if len(n.stack) <= 1 {
		return false
	}
	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	top.screen.Close()
	return true
}

// Top returns the top screen, or nil when the stack is empty.
func (n *Manager) Top() ui.Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1].screen
}

// ViewMode returns the kind of the top screen.
func (n *Manager) ViewMode() ViewMode {
	if len(n.stack) == 0 {
		return ViewFolders
	}
	return n.stack[len(n.stack)-1].mode
}

// Depth returns the number of screens on the stack.
func (n *Manager) Depth() int {
	return len(n.stack)
}

// Screens returns the stack bottom to top.
func (n *Manager) Screens() []ui.Screen {
	out := make([]ui.Screen, len(n.stack))
	for i, e := range n.stack {
		out[i] = e.screen
	}
	return out
}

// CloseAll closes every screen, top first.
func (n *Manager) CloseAll() {
	for i := len(n.stack) - 1; i >= 0; i-- {
		n.stack[i].screen.Close()
	}
	n.stack = nil
}
