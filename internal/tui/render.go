package tui

import (
	"fmt"
	"strings"

	bkey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/servihogar/internal/nav"
)

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := m.renderHeader()
	status := m.renderStatusBar()
	footer := m.renderFooter()
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	contentWidth := max(1, min(m.width-2, m.cfg.Width))

	var body string
	if bodyHeight > 0 {
		body = m.renderBody(contentWidth, bodyHeight)
		if top := m.screens.Top(); top != nil {
			popup := top.View(max(20, contentWidth-4), max(6, bodyHeight-4))
			body = renderPopup(body, popup, max(1, m.width), bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m *Model) renderBody(width, height int) string {
	view := m.ctl.View()
	var body string
	switch view {
	case nav.Onboarding:
		body = m.renderOnboarding(width, height)
	case nav.Marketplace:
		body = m.renderMarketplace(width, height)
	case nav.Dashboard:
		body = m.renderDashboard(width)
	case nav.Profile:
		body = m.renderProfile(width)
	case nav.Services:
		body = m.renderServices(width, height)
	case nav.Requests:
		body = m.renderRequests(width, height)
	case nav.Calendar:
		body = m.renderCalendar(width, height)
	case nav.Payments:
		body = m.renderPayments(width)
	case nav.Reviews:
		body = m.renderReviews(width, height)
	}
	return " " + strings.ReplaceAll(body, "\n", "\n ")
}

func (m *Model) renderHeader() string {
	left := headerAppStyle.Render("SERVIHOGAR")
	view := m.ctl.View()
	if view == nav.Onboarding {
		return renderBar(headerBarStyle, max(1, m.width), left, colorMantle)
	}
	left += tabSepStyle.Render("  " + view.Title())
	tabs := make([]string, 0, len(bottomNav))
	for i, v := range bottomNav {
		label := fmt.Sprintf("%d:%s", i+1, shortTitle(v))
		if v == view {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	right := strings.Join(tabs, tabSepStyle.Render("│"))
	gap := 1
	if w := ansi.StringWidth(left) + ansi.StringWidth(right); w+1 < m.width {
		gap = m.width - w
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func (m *Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.toast)
	if msg == "" {
		if p, ok := m.ctl.Professional(); ok {
			msg = "Signed in as " + p.Name
		} else {
			msg = "Ready"
		}
		return renderBar(statusBarStyle.Foreground(colorMuted), max(1, m.width), msg, colorSurface0)
	}
	if m.toastErr {
		return renderBar(statusErrBarStyle, max(1, m.width), "✗ "+msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), "✓ "+msg, colorSurface0)
}

func (m *Model) renderFooter() string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := bkey.NewBinding(bkey.WithKeys(b.Keys...), bkey.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render(onboardingHint(m))
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// visibleRange returns the [start, end) window of n rows that keeps cursor
// on screen when only rows fit.
func visibleRange(cursor, n, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := max(0, cursor-rows+1)
	return start, start + rows
}

func shortTitle(v nav.View) string {
	switch v {
	case nav.Marketplace:
		return "Explore"
	case nav.Dashboard:
		return "Jobs"
	case nav.Services:
		return "Services"
	case nav.Calendar:
		return "Schedule"
	case nav.Requests:
		return "Inbox"
	}
	return v.Title()
}

// formatMoney renders whole currency units with thousands separators.
func formatMoney(symbol string, amount int64) string {
	sign := ""
	if amount < 0 {
		sign, amount = "-", -amount
	}
	digits := fmt.Sprint(amount)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + symbol + b.String()
}

func stars(rating float64) string {
	full := int(rating + 0.5)
	full = max(0, min(5, full))
	return ratingStyle.Render(strings.Repeat("★", full)) + mutedStyle.Render(strings.Repeat("☆", 5-full))
}

func cursorLine(selected bool, text string) string {
	if selected {
		return selectedStyle.Render("▶ ") + text
	}
	return "  " + text
}

func wrapText(s string, width int) string {
	return lipgloss.NewStyle().Width(max(10, width)).Render(s)
}

func formatRating(rating float64, reviews int) string {
	if reviews == 0 {
		return "no reviews yet"
	}
	return fmt.Sprintf("%.1f (%d reviews)", rating, reviews)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return mutedStyle.Render("-")
	}
	return s
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, max(1, width), "…")
}
