package domain

import "errors"

var (
	// ErrInvalidSchedule is returned when a barber schedule fails ingestion validation
	ErrInvalidSchedule = errors.New("domain: invalid barber schedule")

	// ErrInvalidAppointment is returned when an appointment violates start < end
	ErrInvalidAppointment = errors.New("domain: invalid appointment")

	// ErrUnknownWeekday is returned for weekday names outside monday..sunday
	ErrUnknownWeekday = errors.New("domain: unknown weekday")
)
