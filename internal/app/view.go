package app

// View renders the top screen with any popup composed over it.
func (m Model) View() string {
	top := m.Navigation.Top()
	if m.Width == 0 || m.Height == 0 || top == nil {
		return ""
	}
	return m.Popups.RenderOverlay(top.View())
}
