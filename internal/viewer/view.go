package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/iv/internal/media"
	"github.com/llehouerou/iv/internal/ui"
	"github.com/llehouerou/iv/internal/ui/styles"
)

// View renders the viewer.
func (m *Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}
	s := styles.T().S()
	if m.Empty() {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, s.Muted.Render("No media"))
	}

	rec := m.items[m.page]
	overhead := 0
	var header, footer string
	if m.chrome {
		header = m.renderHeader(rec)
		footer = m.renderFooter(rec)
		overhead = ui.ScreenOverhead
	}

	body := m.renderMedia(rec)
	if m.info {
		body = lipgloss.JoinHorizontal(lipgloss.Center, body, "  ", m.renderInfo(rec))
	}
	body = lipgloss.Place(w, m.BodyHeight(overhead), lipgloss.Center, lipgloss.Center, body)

	if !m.chrome {
		return body
	}
	return header + "\n" + body + "\n" + footer
}

func (m *Model) renderHeader(rec media.Record) string {
	s := styles.T().S()
	w := m.Width()
	counter := fmt.Sprintf("%d/%d", m.page+1, len(m.items))
	name := ansi.Truncate(rec.Name, max(w-len(counter)-2, 1), "…")
	gap := max(w-lipgloss.Width(name)-len(counter), 1)
	title := s.Title.Render(name) + strings.Repeat(" ", gap) + s.Muted.Render(counter)

	var meta []string
	if rec.FolderName != "" {
		meta = append(meta, rec.FolderName)
	}
	if rec.IsVideo() {
		meta = append(meta, media.FormatDuration(rec.Duration))
	}
	if m.keepAwake {
		meta = append(meta, "keep awake")
	}
	if m.notice != "" {
		meta = append(meta, m.notice)
	}
	return title + "\n" + s.Subtle.Render(ansi.Truncate(strings.Join(meta, " · "), w, "…"))
}

func (m *Model) renderMedia(rec media.Record) string {
	s := styles.T().S()
	var label string
	switch {
	case !rec.IsVideo():
		label = s.Base.Render(fmt.Sprintf("IMAGE %dx%d", rec.Width, rec.Height))
	case m.unavailable || m.adapter == nil:
		label = s.Error.Render("Video unavailable")
	case m.adapter.IsPlaying():
		label = s.Active.Render("▶ Playing")
	default:
		label = s.Muted.Render("❚❚ Paused")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(1, 4).
		Render(label + "\n" + s.Subtle.Render(m.mediaSource(rec)))
}

// mediaSource names what the box stands for: the record itself, or the
// poster frame requested from the thumbnail pipeline while a video is idle.
func (m *Model) mediaSource(rec media.Record) string {
	thumb := media.ThumbnailHint(rec)
	if thumb.FrameFraction == 0 || (m.adapter != nil && m.adapter.IsPlaying()) {
		return rec.URI
	}
	return fmt.Sprintf("%s @%d%%", thumb.URI, int(thumb.FrameFraction*100))
}

func (m *Model) renderInfo(rec media.Record) string {
	s := styles.T().S()
	details := media.Details(rec)
	focused := min(m.infoRow, len(details)-1)
	lines := make([]string, 0, len(details))
	for i, d := range details {
		value := s.Base.Render(d.Value)
		if i == focused {
			value = s.Active.Render(d.Value)
		}
		lines = append(lines, s.Muted.Render(d.Label+": ")+value)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter(rec media.Record) string {
	s := styles.T().S()
	if !rec.IsVideo() || m.adapter == nil {
		return s.Subtle.Render(ansi.Truncate("h/l: prev/next  i: info  y: copy  d: delete  esc: back", m.Width(), "…"))
	}
	m.bar.Width = m.barWidth()
	times := fmt.Sprintf(" %s / %s", media.FormatDuration(m.position), media.FormatDuration(m.duration))
	return m.bar.ViewAs(m.Progress()) + s.Muted.Render(times)
}

// barWidth leaves room for the " mm:ss / mm:ss" suffix.
func (m *Model) barWidth() int {
	return max(m.Width()-16, ui.MinProgressBarWidth)
}
