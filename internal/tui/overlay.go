package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPopup centers popup, framed in a rounded card, over base.
func renderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := canvasLines(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, l := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(l))
	}
	if cardWidth == 0 {
		return strings.Join(canvas, "\n")
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	for i, line := range cardLines {
		row := y + i
		if row >= len(canvas) {
			break
		}
		canvas[row] = spliceLine(canvas[row], padLine(line, cardWidth), x, width)
	}
	return strings.Join(canvas, "\n")
}

// spliceLine writes over on top of row starting at column x.
func spliceLine(row, over string, x, width int) string {
	left := padLine(ansi.Truncate(row, x, ""), x)
	end := x + ansi.StringWidth(over)
	right := ""
	if end < width {
		full := padLine(row, width)
		right = strings.TrimPrefix(full, ansi.Truncate(full, end, ""))
	}
	return ansi.Truncate(left+over+right, width, "")
}

func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padLine(lines[i], width)
	}
	return lines
}

func padLine(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
