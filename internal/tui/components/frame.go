package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Frame draws lines inside the border of style, with title set into the top
// edge. width and height are the outer dimensions. Lines beyond the inner
// height are dropped and each line is cut to the inner width.
func Frame(style lipgloss.Style, title string, titleStyle lipgloss.Style, lines []string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW, innerH := width-2, height-2

	border := style.GetBorderStyle()
	edge := lipgloss.NewStyle().Foreground(style.GetBorderTopForeground())

	title = runewidth.Truncate(title, innerW, "")
	fill := innerW - runewidth.StringWidth(title)
	top := edge.Render(border.TopLeft) +
		titleStyle.Render(title) +
		edge.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	body := style.
		BorderTop(false).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(true).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))

	if innerH == 0 {
		// lipgloss still emits one empty row for zero-height content.
		body = edge.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerW) + border.BottomRight)
	}
	return top + "\n" + body
}

// truncate cuts s to at most width columns, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
