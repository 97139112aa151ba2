package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/nav"
)

func (m *Model) updateReviews(msg tea.KeyMsg, scope string) tea.Cmd {
	m.moveKeys(msg, scope, nav.Reviews, len(m.ctl.Reviews()))
	return nil
}

func (m *Model) renderReviews(width, height int) string {
	sum := m.ctl.ReviewSummary()
	lines := []string{
		titleStyle.Render("Reviews"),
		selectedStyle.Render(fmt.Sprintf("%.1f", sum.Average)) + " " + stars(sum.Average) + mutedStyle.Render(fmt.Sprintf(" %d reviews", sum.Total)),
		"",
	}
	barWidth := max(5, min(20, width-20))
	for _, b := range sum.Distribution {
		filled := barWidth * b.Percentage / 100
		lines = append(lines, fmt.Sprintf("%d★ %s%s %3d%%", b.Stars,
			ratingStyle.Render(strings.Repeat("█", filled)),
			mutedStyle.Render(strings.Repeat("░", barWidth-filled)),
			b.Percentage))
	}
	lines = append(lines, "")

	reviews := m.ctl.Reviews()
	if len(reviews) == 0 {
		return strings.Join(append(lines, mutedStyle.Render("No reviews yet.")), "\n")
	}
	cur := m.cursor(nav.Reviews, len(reviews))
	start, end := visibleRange(cur, len(reviews), max(1, (height-len(lines))/3))
	for i := start; i < end; i++ {
		r := reviews[i]
		lines = append(lines,
			cursorLine(i == cur, r.ClientName+"  "+stars(float64(r.Rating))+mutedStyle.Render("  "+r.Date)),
			"    "+truncate(r.Comment, width-4),
			"    "+mutedStyle.Render(fmt.Sprintf("%s · %d found this helpful", r.Service, r.Helpful)),
		)
	}
	return strings.Join(lines, "\n")
}
