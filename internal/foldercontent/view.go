package foldercontent

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/iv/internal/media"
	"github.com/llehouerou/iv/internal/ui"
	"github.com/llehouerou/iv/internal/ui/styles"
)

// View renders the grid.
func (m *Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}
	s := styles.T().S()

	header := m.renderTitle() + "\n" + s.Subtle.Render(strings.Repeat("─", w))
	bodyHeight := m.BodyHeight(ui.ScreenOverhead)
	body := lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(m.renderGrid())
	return header + "\n" + body + "\n" + m.renderFooter()
}

// Title returns the header text without styling.
func (m *Model) Title() string {
	if m.selection.Active() {
		return fmt.Sprintf("%d/%d selected", m.selection.Len(), len(m.items))
	}
	return fmt.Sprintf("%s · %s · %d", m.title, m.scope.Filter.Label(), len(m.items))
}

func (m *Model) renderTitle() string {
	s := styles.T().S()
	title := ansi.Truncate(m.Title(), m.Width(), "…")
	if m.selection.Active() {
		return s.Selected.Render(title)
	}
	return s.Title.Render(title)
}

func (m *Model) renderFooter() string {
	s := styles.T().S()
	hint := "enter: open  x: select  esc: back"
	if m.selection.Active() {
		hint = "x/enter: toggle  ctrl+a: all  d: delete  esc: cancel"
	}
	return s.Subtle.Render(ansi.Truncate(hint, m.Width(), "…"))
}

func (m *Model) renderGrid() string {
	s := styles.T().S()
	switch {
	case !m.loaded:
		return s.Muted.Render("Loading…")
	case len(m.items) == 0:
		return s.Muted.Render("No media")
	}

	cols, rows := m.columns(), m.rows()
	start, end := m.cursor.VisibleRange(len(m.items), cols, rows)
	var lines []string
	for rowStart := start; rowStart < end; rowStart += cols {
		cells := make([]string, 0, cols)
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			cells = append(cells, m.renderCell(i))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(i int) string {
	s := styles.T().S()
	r := m.items[i]
	inner := ui.CellWidth - 2

	mark := "  "
	if m.selection.Active() {
		mark = "○ "
		if m.selection.Contains(r.ID) {
			mark = "● "
		}
	}
	name := mark + ansi.Truncate(r.Name, inner-2, "…")

	meta := fmt.Sprintf("%dx%d", r.Width, r.Height)
	if r.IsVideo() {
		meta = "▶ " + media.FormatDuration(r.Duration)
	}
	meta = "  " + meta

	style := s.Base
	switch {
	case i == m.cursor.Pos():
		style = s.Cursor
	case m.selection.Contains(r.ID):
		style = s.Selected
	}
	return style.Width(inner).Render(name) + "  \n" +
		s.Muted.Width(inner).Render(meta) + "  \n"
}
