package domain

import "github.com/m04kA/SMC-BarberAgenda/pkg/types"

// TimeSlot generated 30-minute bookable interval. Not persisted.
type TimeSlot struct {
	Start   types.TimeString // HH:MM, 24h
	End     types.TimeString // Start + 30m
	Display string           // 12h, e.g. "9:00 pm"
}

// StartMinutes start as minute of day
func (s TimeSlot) StartMinutes() int {
	return s.Start.Minutes()
}
