package domain

// Verdict reason a barber slot is or isn't offered for booking.
// Values are listed in resolver precedence order.
type Verdict string

const (
	VerdictOutsideException    Verdict = "outside_exception"
	VerdictNonWorkingDay       Verdict = "non_working_day"
	VerdictOutsideAllowedHours Verdict = "outside_allowed_hours"
	VerdictLunchBreak          Verdict = "lunch_break"
	VerdictOccupied            Verdict = "occupied"
	VerdictAvailable           Verdict = "available"
)

// AllVerdicts in precedence order
var AllVerdicts = []Verdict{
	VerdictOutsideException,
	VerdictNonWorkingDay,
	VerdictOutsideAllowedHours,
	VerdictLunchBreak,
	VerdictOccupied,
	VerdictAvailable,
}

// IsAvailable true only for VerdictAvailable
func (v Verdict) IsAvailable() bool {
	return v == VerdictAvailable
}

// IsCandidate true when the slot passes working-day, allowed-hours and lunch rules
func (v Verdict) IsCandidate() bool {
	return v == VerdictAvailable || v == VerdictOccupied
}

func (v Verdict) String() string {
	return string(v)
}
