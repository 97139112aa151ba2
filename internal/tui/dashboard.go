package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/nav"
)

var dashboardShortcuts = map[string]nav.View{
	"go-requests": nav.Requests,
	"go-calendar": nav.Calendar,
	"go-services": nav.Services,
	"go-profile":  nav.Profile,
	"go-payments": nav.Payments,
	"go-reviews":  nav.Reviews,
}

func (m *Model) updateDashboard(msg tea.KeyMsg, scope string) tea.Cmd {
	for action, v := range dashboardShortcuts {
		if m.keys.IsAction(msg, action, scope) {
			return m.navigate(v)
		}
	}
	return nil
}

func (m *Model) renderDashboard(width int) string {
	p, _ := m.ctl.Professional()
	d := m.ctl.Dashboard()
	lines := []string{
		titleStyle.Render("Hello, " + p.FirstName() + "!"),
		mutedStyle.Render("Here is how your work is going."),
		"",
	}
	stat := func(label, value string) string {
		return cardStyle.Render(mutedStyle.Render(label) + "\n" + selectedStyle.Render(value))
	}
	lines = append(lines,
		stat("Requests", fmt.Sprintf("%d (%d new)", d.TotalRequests, d.PendingRequests))+" "+
			stat("Completed", fmt.Sprint(d.CompletedJobs)),
		stat("This month", formatMoney(m.cfg.CurrencySymbol, d.MonthlyEarnings))+" "+
			stat("Rating", fmt.Sprintf("%.1f", d.Rating)),
		"",
		sectionStyle.Render("Recent requests"),
	)
	if len(d.Recent) == 0 {
		lines = append(lines, mutedStyle.Render("  No requests yet."))
	}
	for _, r := range d.Recent {
		lines = append(lines, fmt.Sprintf("  %s %s · %s", statusBadge(string(r.Status)), r.ClientName, r.Service))
	}
	lines = append(lines, "", sectionStyle.Render("Upcoming"))
	if len(d.Upcoming) == 0 {
		lines = append(lines, mutedStyle.Render("  Nothing scheduled."))
	}
	for _, a := range d.Upcoming {
		lines = append(lines, fmt.Sprintf("  %s %s  %s · %s", a.Date, a.Time, a.ClientName, a.Service))
	}
	return strings.Join(lines, "\n")
}
