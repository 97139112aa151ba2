package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
)

func (m *Model) updatePayments(msg tea.KeyMsg, scope string) tea.Cmd {
	accounts := m.ctl.PaymentAccounts()
	if m.moveKeys(msg, scope, nav.Payments, len(accounts)) {
		return nil
	}
	if m.keys.IsAction(msg, "new", scope) {
		m.screens.Push(m.accountForm(domain.PaymentAccount{}))
		return nil
	}
	if len(accounts) == 0 {
		return nil
	}
	acc := accounts[m.cursor(nav.Payments, len(accounts))]
	switch {
	case m.keys.IsAction(msg, "edit", scope):
		m.screens.Push(m.accountForm(acc))
	case m.keys.IsAction(msg, "delete", scope):
		return m.report(m.ctl.DeleteAccount(acc.ID), "Account deleted")
	case m.keys.IsAction(msg, "set-default", scope):
		return m.report(m.ctl.SetDefaultAccount(acc.ID), acc.Name+" is now your default account")
	}
	return nil
}

func (m *Model) accountForm(acc domain.PaymentAccount) *FormScreen {
	title := "New payment account"
	if acc.ID != "" {
		title = "Edit payment account"
	}
	types := domain.AccountTypes()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = string(t)
	}
	fields := []FormField{
		{Key: "type", Label: "Type", Kind: choiceField, Value: string(acc.Type), Options: options},
		{Key: "name", Label: "Name", Value: acc.Name},
		{Key: "account_info", Label: "CBU / CVU / email", Value: acc.AccountInfo},
	}
	return NewFormScreen(title, fields, func(v FormValues) (string, error) {
		_, err := m.ctl.SaveAccount(acc.ID, domain.AccountInput{
			Type:        v.Text("type"),
			Name:        v.Text("name"),
			AccountInfo: v.Text("account_info"),
		})
		if err != nil {
			return "", err
		}
		if acc.ID == "" {
			return "Account added", nil
		}
		return "Account updated", nil
	})
}

func (m *Model) renderPayments(width int) string {
	sym := m.cfg.CurrencySymbol
	stats := m.ctl.PaymentStats()
	lines := []string{
		titleStyle.Render("Payments"),
		mutedStyle.Render("This month ") + selectedStyle.Render(formatMoney(sym, stats.MonthlyEarnings)) +
			mutedStyle.Render("  pending ") + formatMoney(sym, stats.PendingPayments) +
			mutedStyle.Render(fmt.Sprintf("  completed %d", stats.CompletedPayments)),
		"",
		sectionStyle.Render("Payout accounts"),
	}
	accounts := m.ctl.PaymentAccounts()
	if len(accounts) == 0 {
		lines = append(lines, mutedStyle.Render("  No accounts yet. Press n to add one."))
	}
	cur := m.cursor(nav.Payments, len(accounts))
	for i, a := range accounts {
		text := a.Name + "  " + mutedStyle.Render(a.Type.Label()+" · "+a.AccountInfo)
		if a.IsDefault {
			text += "  " + statusStyles["completed"].Render("default")
		}
		lines = append(lines, cursorLine(i == cur, truncate(text, width-2)))
	}
	lines = append(lines, "", sectionStyle.Render("Recent payments"))
	for _, r := range m.ctl.PaymentRecords() {
		lines = append(lines, truncate(fmt.Sprintf("  %s  %-18s %10s  %s", r.Date, r.ClientName, formatMoney(sym, r.Amount), statusBadge(string(r.Status))), width))
	}
	return strings.Join(lines, "\n")
}
