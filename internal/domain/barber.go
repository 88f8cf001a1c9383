package domain

// Barber agenda column owner
type Barber struct {
	ID       int64
	Name     string
	IsActive bool
	Schedule BarberSchedule

	// ScheduleIsDefault is set when the stored schedule was missing or broken;
	// ScheduleIssue then holds the reason
	ScheduleIsDefault bool
	ScheduleIssue     string
}

// UseDefaultSchedule replaces the schedule with DefaultSchedule and records why
func (b *Barber) UseDefaultSchedule(reason string) {
	b.Schedule = DefaultSchedule()
	b.ScheduleIsDefault = true
	b.ScheduleIssue = reason
}
