package folderlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/iv/internal/ui/styles"
)

// View renders the folder list.
func (m *Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}
	s := styles.T().S()

	header := s.Title.Render("Folders") + s.Muted.Render(" · ") + s.Active.Render(m.filter.Label())
	if m.loaded {
		header += s.Muted.Render(fmt.Sprintf(" · %s items", humanize.Comma(int64(m.total))))
	}
	header += "\n" + s.Subtle.Render(strings.Repeat("─", w))

	body := m.renderBody()
	footer := s.Subtle.Render(ansi.Truncate("enter: open  f: filter  q: quit", w, "…"))
	return header + "\n" + lipgloss.NewStyle().Height(m.listHeight()).MaxHeight(m.listHeight()).Render(body) + "\n" + footer
}

func (m *Model) renderBody() string {
	s := styles.T().S()
	switch {
	case !m.loaded:
		return s.Muted.Render("Loading…")
	case m.entries() == 0:
		return s.Muted.Render("No media")
	}

	n, rows := m.entries(), m.listHeight()
	start, end := m.cursor.VisibleRange(n, 1, rows)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(i int) string {
	s := styles.T().S()
	w := m.Width()

	name, count, thumb := AllMediaTitle, m.total, ""
	if i > 0 {
		f := m.folders[i-1]
		name, count = f.Name, f.Count
		thumb = f.ThumbnailURI
	}
	countText := humanize.Comma(int64(count))
	nameWidth := max(w-len(countText)-4, 1)
	if thumb != "" && w > 60 {
		nameWidth = max(nameWidth-len(thumb)-2, 10)
	}

	label := ansi.Truncate(name, nameWidth, "…")
	line := " " + label + strings.Repeat(" ", max(nameWidth-lipgloss.Width(label), 0))
	if thumb != "" && w > 60 {
		line += s.Subtle.Render(" "+thumb+" ")
	}
	line += " " + countText

	if i == m.cursor.Pos() {
		return s.Cursor.Width(w).Render(ansi.Strip(line))
	}
	if i == 0 {
		return s.Active.Render(line)
	}
	return s.Base.Render(line)
}
