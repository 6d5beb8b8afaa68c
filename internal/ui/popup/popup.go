package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/iv/internal/ui/styles"
)

// RenderBordered wraps content in a rounded border and centers it in a
// screenW x screenH area.
func RenderBordered(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+6, max(screenW-4, 10)) // padding + border
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, content)
}

// Compose overlays popupView on top of base. Blank overlay cells (outside the
// trimmed content of each line) let the base show through.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for len(baseLines) < len(overlayLines) {
		baseLines = append(baseLines, "")
	}

	for i, line := range overlayLines {
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}
		prefix := ansi.Cut(baseLine, 0, start)
		if pw := ansi.StringWidth(prefix); pw < start {
			prefix += strings.Repeat(" ", start-pw)
		}
		baseLines[i] = prefix + ansi.Cut(line, start, end) + ansi.Cut(baseLine, end, width)
	}
	return strings.Join(baseLines, "\n")
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
