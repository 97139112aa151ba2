package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/domain"
)

func (m *Model) updateProfile(msg tea.KeyMsg, scope string) tea.Cmd {
	switch {
	case m.keys.IsAction(msg, "edit", scope):
		m.screens.Push(m.profileForm())
	case m.keys.IsAction(msg, "remove-photo", scope):
		return m.report(m.ctl.RemovePhoto(), "Photo removed")
	}
	return nil
}

func (m *Model) profileForm() *FormScreen {
	p, _ := m.ctl.Professional()
	catalog := m.ctl.Catalog()
	fields := []FormField{
		{Key: "name", Label: "Full name", Value: p.Name},
		{Key: "email", Label: "Email", Value: p.Email},
		{Key: "phone", Label: "Phone", Value: p.Phone},
		{Key: "photo", Label: "Photo", Value: p.Photo},
		{Key: "description", Label: "About me", Value: p.Description},
		{Key: "specialty", Label: "Specialties", Kind: multiField, Options: catalog.Specialties, Values: p.Specialty},
		{Key: "experience", Label: "Experience", Value: p.Experience},
		{Key: "certifications", Label: "Certifications", Value: p.Certifications},
		{Key: "work_zone", Label: "Work zones", Kind: multiField, Options: catalog.Zones, Values: p.WorkZone},
		{Key: "availability", Label: "Availability", Value: p.Availability},
		{Key: "payment_methods", Label: "Payment methods", Kind: multiField, Options: catalog.PaymentOptions, Values: p.PaymentMethods},
	}
	return NewFormScreen("Edit profile", fields, func(v FormValues) (string, error) {
		text := func(key string) *string {
			s := v.Text(key)
			return &s
		}
		_, err := m.ctl.UpdateProfile(domain.ProfileUpdate{
			Name:           text("name"),
			Email:          text("email"),
			Phone:          text("phone"),
			Photo:          text("photo"),
			Description:    text("description"),
			Specialty:      v.List("specialty"),
			Experience:     text("experience"),
			Certifications: text("certifications"),
			WorkZone:       v.List("work_zone"),
			Availability:   text("availability"),
			PaymentMethods: v.List("payment_methods"),
		})
		if err != nil {
			return "", err
		}
		return "Profile updated", nil
	})
}

func (m *Model) renderProfile(width int) string {
	p, _ := m.ctl.Professional()
	photo := p.Photo
	if photo == "" {
		photo = mutedStyle.Render("(no photo)")
	}
	row := func(label, value string) string {
		if value == "" {
			value = mutedStyle.Render("-")
		}
		return mutedStyle.Render(label+": ") + value
	}
	lines := []string{
		titleStyle.Render(p.Name),
		stars(p.Rating) + mutedStyle.Render(" "+formatRating(p.Rating, p.ReviewsCount)),
		"",
		row("Photo", photo),
		row("Email", p.Email),
		row("Phone", p.Phone),
		"",
		sectionStyle.Render("About me"),
		wrapText(orDash(p.Description), width),
		"",
		row("Specialties", strings.Join(p.Specialty, ", ")),
		row("Experience", p.Experience),
		row("Certifications", p.Certifications),
		row("Work zones", strings.Join(p.WorkZone, ", ")),
		row("Availability", p.Availability),
		row("Payment methods", strings.Join(p.PaymentMethods, ", ")),
		row("Published services", fmt.Sprint(len(p.Services))),
	}
	return strings.Join(lines, "\n")
}
