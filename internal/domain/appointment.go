package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// AppointmentStatus status of an appointment as stored upstream
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pendiente"
	StatusConfirmed AppointmentStatus = "Confirmada"
	StatusCompleted AppointmentStatus = "Completada"
	StatusCancelled AppointmentStatus = "Cancelada"
)

// Appointment booked [StartTime, EndTime) interval of one barber on one date
type Appointment struct {
	ID          int64
	BarberID    int64
	ClientName  string
	ServiceName string
	Date        time.Time
	StartTime   types.ClockTime // HH:MM:SS
	EndTime     types.ClockTime // HH:MM:SS
	Status      AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns false for cancelled appointments; they never occupy slots
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment is still upcoming
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// StartMinutes start as minute of day
func (a *Appointment) StartMinutes() int {
	return a.StartTime.Minutes()
}

// EndMinutes end as minute of day
func (a *Appointment) EndMinutes() int {
	return a.EndTime.Minutes()
}

// Contains reports whether minute falls into [start, end)
func (a *Appointment) Contains(minute int) bool {
	return minute >= a.StartMinutes() && minute < a.EndMinutes()
}

// Overlaps reports whether [start, end) in minutes of day intersects the appointment
func (a *Appointment) Overlaps(start, end int) bool {
	return start < a.EndMinutes() && a.StartMinutes() < end
}

// DurationMinutes length of the appointment
func (a *Appointment) DurationMinutes() int {
	return a.EndMinutes() - a.StartMinutes()
}

// Validate checks start < end with both times well formed
func (a *Appointment) Validate() error {
	if _, err := types.NewClockTime(a.StartTime.String()); err != nil {
		return fmt.Errorf("%w: start: %w", ErrInvalidAppointment, err)
	}
	if _, err := types.NewClockTime(a.EndTime.String()); err != nil {
		return fmt.Errorf("%w: end: %w", ErrInvalidAppointment, err)
	}
	if a.StartTime.Seconds() >= a.EndTime.Seconds() {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidAppointment, a.StartTime, a.EndTime)
	}
	return nil
}
