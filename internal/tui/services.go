package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
)

func (m *Model) updateServices(msg tea.KeyMsg, scope string) tea.Cmd {
	p, _ := m.ctl.Professional()
	if m.moveKeys(msg, scope, nav.Services, len(p.Services)) {
		return nil
	}
	if m.keys.IsAction(msg, "new", scope) {
		m.screens.Push(m.serviceForm(domain.Service{}))
		return nil
	}
	if len(p.Services) == 0 {
		return nil
	}
	svc := p.Services[m.cursor(nav.Services, len(p.Services))]
	switch {
	case m.keys.IsAction(msg, "edit", scope):
		m.screens.Push(m.serviceForm(svc))
	case m.keys.IsAction(msg, "delete", scope):
		return m.report(m.ctl.DeleteService(svc.ID), "Service deleted")
	}
	return nil
}

// serviceForm edits svc, or creates a service when svc has no ID.
func (m *Model) serviceForm(svc domain.Service) *FormScreen {
	title := "New service"
	if svc.ID != "" {
		title = "Edit service"
	}
	fields := []FormField{
		{Key: "title", Label: "Title", Value: svc.Title},
		{Key: "category", Label: "Category", Kind: choiceField, Value: svc.Category, Options: m.ctl.Catalog().Specialties},
		{Key: "description", Label: "Description", Value: svc.Description},
		{Key: "price", Label: "Price", Value: svc.Price},
		{Key: "images", Label: "Images", Kind: listField, Values: svc.Images, NewItem: func(v FormValues) string {
			return domain.PlaceholderImage(v.Text("category"))
		}},
	}
	return NewFormScreen(title, fields, func(v FormValues) (string, error) {
		_, err := m.ctl.SaveService(svc.ID, domain.ServiceInput{
			Title:       v.Text("title"),
			Category:    v.Text("category"),
			Description: v.Text("description"),
			Price:       v.Text("price"),
			Images:      v.List("images"),
		})
		if err != nil {
			return "", err
		}
		if svc.ID == "" {
			return "Service published", nil
		}
		return "Service updated", nil
	})
}

func (m *Model) renderServices(width, height int) string {
	p, _ := m.ctl.Professional()
	lines := []string{
		titleStyle.Render("My services"),
		mutedStyle.Render(fmt.Sprintf("%d published", len(p.Services))),
		"",
	}
	if len(p.Services) == 0 {
		lines = append(lines, mutedStyle.Render("You have not published any service yet. Press n to add one."))
		return strings.Join(lines, "\n")
	}
	cur := m.cursor(nav.Services, len(p.Services))
	start, end := visibleRange(cur, len(p.Services), max(1, (height-len(lines))/3))
	for i := start; i < end; i++ {
		s := p.Services[i]
		lines = append(lines,
			cursorLine(i == cur, s.Title+"  "+selectedStyle.Render(s.Price)),
			"    "+mutedStyle.Render(fmt.Sprintf("%s · %d images", s.Category, len(s.Images))),
			"    "+truncate(s.Description, width-4),
		)
	}
	return strings.Join(lines, "\n")
}
