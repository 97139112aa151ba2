package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	sectionStyle  = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	ratingStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	statusStyles = map[string]lipgloss.Style{
		"pending":   lipgloss.NewStyle().Foreground(colorWarning),
		"accepted":  lipgloss.NewStyle().Foreground(colorInfo),
		"scheduled": lipgloss.NewStyle().Foreground(colorInfo),
		"completed": lipgloss.NewStyle().Foreground(colorSuccess),
		"rejected":  lipgloss.NewStyle().Foreground(colorError),
		"cancelled": lipgloss.NewStyle().Foreground(colorError),
	}
)

func statusBadge(status string) string {
	style, ok := statusStyles[status]
	if !ok {
		style = mutedStyle
	}
	return style.Render("[" + status + "]")
}
