package domain

// Slot grid
const (
	SlotDurationMinutes = 30
)

// Default lunch break
const (
	DefaultLunchStart = "13:00"
	DefaultLunchEnd   = "14:00"
)

// Appointment validation
const (
	MinAppointmentMinutes = SlotDurationMinutes
	MaxAppointmentMinutes = 480 // 8 hours
	MaxClientNameLength   = 200
	MaxServiceNameLength  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Barber column header labels
const (
	LabelAvailable   = "Disponible"
	LabelUnavailable = "No disponible"
)

// ActiveStatuses statuses of appointments that occupy slots
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
