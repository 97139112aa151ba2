package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/domain"
)

const dateLayout = "2006-01-02"

// Today is the default date for a new appointment.
func (a *App) Today() string {
	return a.now().Format(dateLayout)
}

// Appointments returns every calendar entry in stored order.
func (a *App) Appointments() []domain.Appointment {
	return append([]domain.Appointment(nil), a.appointments...)
}

// Scheduled returns upcoming entries ordered by date and time.
func (a *App) Scheduled() []domain.Appointment {
	return domain.ScheduledAppointments(a.appointments)
}

// SaveAppointment creates an entry when editingID is empty, otherwise
// replaces the existing one. Saved entries are always scheduled.
func (a *App) SaveAppointment(editingID string, in domain.AppointmentInput) (domain.Appointment, error) {
	if err := a.requireProfile("save appointment"); err != nil {
		return domain.Appointment{}, err
	}
	if err := domain.ValidateAppointment(in); err != nil {
		return domain.Appointment{}, a.rejected("save appointment", err)
	}
	apt := domain.Appointment{
		Date:       in.Date,
		Time:       in.Time,
		Duration:   in.Duration,
		ClientName: in.ClientName,
		Service:    in.Service,
		Location:   in.Location,
		Notes:      in.Notes,
		Status:     domain.AppointmentScheduled,
	}
	if editingID == "" {
		apt.ID = a.newID()
		a.appointments = append(a.appointments, apt)
	} else {
		idx := a.appointmentIndex(editingID)
		if idx < 0 {
			return domain.Appointment{}, fmt.Errorf("save appointment %s: %w", editingID, domain.ErrAppointmentNotFound)
		}
		apt.ID = editingID
		a.appointments[idx] = apt
	}
	a.log.Info("appointment saved", zap.String("appointment", apt.ID), zap.Bool("new", editingID == ""))
	return apt, nil
}

func (a *App) DeleteAppointment(id string) error {
	if err := a.requireProfile("delete appointment"); err != nil {
		return err
	}
	idx := a.appointmentIndex(id)
	if idx < 0 {
		return fmt.Errorf("delete appointment %s: %w", id, domain.ErrAppointmentNotFound)
	}
	a.appointments = append(a.appointments[:idx:idx], a.appointments[idx+1:]...)
	a.log.Info("appointment deleted", zap.String("appointment", id))
	return nil
}

func (a *App) CompleteAppointment(id string) error {
	return a.setAppointmentStatus(id, domain.AppointmentCompleted)
}

func (a *App) CancelAppointment(id string) error {
	return a.setAppointmentStatus(id, domain.AppointmentCancelled)
}

func (a *App) setAppointmentStatus(id string, status domain.AppointmentStatus) error {
	if err := a.requireProfile("update appointment"); err != nil {
		return err
	}
	idx := a.appointmentIndex(id)
	if idx < 0 {
		return fmt.Errorf("update appointment %s: %w", id, domain.ErrAppointmentNotFound)
	}
	a.appointments[idx].Status = status
	a.log.Info("appointment status changed", zap.String("appointment", id), zap.String("status", string(status)))
	return nil
}

func (a *App) appointmentIndex(id string) int {
	for i, apt := range a.appointments {
		if apt.ID == id {
			return i
		}
	}
	return -1
}
