package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
)

func (m *Model) updateCalendar(msg tea.KeyMsg, scope string) tea.Cmd {
	list := m.ctl.Scheduled()
	if m.moveKeys(msg, scope, nav.Calendar, len(list)) {
		return nil
	}
	if m.keys.IsAction(msg, "new", scope) {
		m.screens.Push(m.appointmentForm(domain.Appointment{Date: m.ctl.Today()}))
		return nil
	}
	if len(list) == 0 {
		return nil
	}
	apt := list[m.cursor(nav.Calendar, len(list))]
	switch {
	case m.keys.IsAction(msg, "edit", scope):
		m.screens.Push(m.appointmentForm(apt))
	case m.keys.IsAction(msg, "delete", scope):
		return m.report(m.ctl.DeleteAppointment(apt.ID), "Appointment deleted")
	case m.keys.IsAction(msg, "complete", scope):
		return m.report(m.ctl.CompleteAppointment(apt.ID), "Appointment completed")
	case m.keys.IsAction(msg, "cancel", scope):
		return m.report(m.ctl.CancelAppointment(apt.ID), "Appointment cancelled")
	}
	return nil
}

// appointmentForm edits apt, or creates an appointment when apt has no ID.
func (m *Model) appointmentForm(apt domain.Appointment) *FormScreen {
	title := "New appointment"
	if apt.ID != "" {
		title = "Edit appointment"
	}
	fields := []FormField{
		{Key: "date", Label: "Date (YYYY-MM-DD)", Value: apt.Date},
		{Key: "time", Label: "Time (HH:MM)", Value: apt.Time},
		{Key: "duration", Label: "Duration", Value: apt.Duration},
		{Key: "client", Label: "Client", Value: apt.ClientName},
		{Key: "service", Label: "Service", Value: apt.Service},
		{Key: "location", Label: "Location", Value: apt.Location},
		{Key: "notes", Label: "Notes", Value: apt.Notes},
	}
	return NewFormScreen(title, fields, func(v FormValues) (string, error) {
		_, err := m.ctl.SaveAppointment(apt.ID, domain.AppointmentInput{
			Date:       v.Text("date"),
			Time:       v.Text("time"),
			Duration:   v.Text("duration"),
			ClientName: v.Text("client"),
			Service:    v.Text("service"),
			Location:   v.Text("location"),
			Notes:      v.Text("notes"),
		})
		if err != nil {
			return "", err
		}
		if apt.ID == "" {
			return "Appointment created", nil
		}
		return "Appointment updated", nil
	})
}

func (m *Model) renderCalendar(width, height int) string {
	all := m.ctl.Appointments()
	list := m.ctl.Scheduled()
	done := len(domain.AppointmentsWithStatus(all, domain.AppointmentCompleted))
	cancelled := len(domain.AppointmentsWithStatus(all, domain.AppointmentCancelled))
	lines := []string{
		titleStyle.Render("My schedule"),
		mutedStyle.Render(fmt.Sprintf("Today %s · %d scheduled · %d completed · %d cancelled", m.ctl.Today(), len(list), done, cancelled)),
		"",
	}
	if len(list) == 0 {
		lines = append(lines, mutedStyle.Render("No upcoming appointments. Press n to add one."))
		return strings.Join(lines, "\n")
	}
	cur := m.cursor(nav.Calendar, len(list))
	start, end := visibleRange(cur, len(list), max(1, (height-len(lines))/3))
	for i := start; i < end; i++ {
		a := list[i]
		detail := a.Location
		if a.Duration != "" {
			detail = a.Duration + " · " + detail
		}
		lines = append(lines,
			cursorLine(i == cur, selectedStyle.Render(a.Date+" "+a.Time)+"  "+a.ClientName),
			"    "+a.Service,
			"    "+mutedStyle.Render(truncate(detail, width-4)),
		)
	}
	return strings.Join(lines, "\n")
}
