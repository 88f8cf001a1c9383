package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// WorkingDay weekly flag for a single weekday.
// Empty AllowedHours means every generated slot of the day is a candidate.
type WorkingDay struct {
	Active       bool               `json:"active"`
	AllowedHours []types.TimeString `json:"allowedHours,omitempty"`
}

// HasAllowedHours reports whether the day restricts slots to an explicit list
func (d WorkingDay) HasAllowedHours() bool {
	return len(d.AllowedHours) > 0
}

// Allows reports whether the slot start is a member of AllowedHours
func (d WorkingDay) Allows(slotStart types.TimeString) bool {
	for _, h := range d.AllowedHours {
		if h == slotStart {
			return true
		}
	}
	return false
}

// LunchBreak daily break; slots in [Start, End) are blocked when Active
type LunchBreak struct {
	Active bool             `json:"active"`
	Start  types.TimeString `json:"start"`
	End    types.TimeString `json:"end"`
}

// Contains reports whether slotStart falls into [Start, End) by minute of day
func (l LunchBreak) Contains(slotStart types.TimeString) bool {
	slot := slotStart.Minutes()
	return slot >= l.Start.Minutes() && slot < l.End.Minutes()
}

// DefaultLunchBreak 13:00-14:00, active
func DefaultLunchBreak() LunchBreak {
	return LunchBreak{
		Active: true,
		Start:  types.TimeString(DefaultLunchStart),
		End:    types.TimeString(DefaultLunchEnd),
	}
}

// ScheduleException per-date override of the weekly working-day flag
type ScheduleException struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Active bool   `json:"active"`
}

// BarberSchedule weekly working days, lunch break and date exceptions of one barber
type BarberSchedule struct {
	WorkingDays map[Weekday]WorkingDay `json:"workingDays"`
	LunchBreak  *LunchBreak            `json:"lunchBreak,omitempty"`
	Exceptions  []ScheduleException    `json:"exceptions,omitempty"`
}

// DefaultSchedule Monday-Saturday active without hour restrictions, Sunday off,
// lunch 13:00-14:00, no exceptions. Used whenever a barber schedule is missing or broken.
func DefaultSchedule() BarberSchedule {
	days := make(map[Weekday]WorkingDay, len(AllWeekdays))
	for _, d := range AllWeekdays {
		days[d] = WorkingDay{Active: d != Sunday}
	}

	lunch := DefaultLunchBreak()
	return BarberSchedule{
		WorkingDays: days,
		LunchBreak:  &lunch,
		Exceptions:  []ScheduleException{},
	}
}

// DayFor returns the working day for the date's weekday.
// A weekday missing from WorkingDays is inactive.
func (s BarberSchedule) DayFor(date time.Time) WorkingDay {
	day, ok := s.WorkingDays[WeekdayOf(date)]
	if !ok {
		return WorkingDay{Active: false}
	}
	return day
}

// ExceptionFor returns the first exception matching the date, nil if none
func (s BarberSchedule) ExceptionFor(date time.Time) *ScheduleException {
	key := date.Format(DateFormat)
	for i := range s.Exceptions {
		if s.Exceptions[i].Date == key {
			return &s.Exceptions[i]
		}
	}
	return nil
}

// EffectiveLunch returns the lunch break, the default one when unset
func (s BarberSchedule) EffectiveLunch() LunchBreak {
	if s.LunchBreak == nil {
		return DefaultLunchBreak()
	}
	return *s.LunchBreak
}

// IsWorkingDay exception's Active flag if one exists for the date, else the weekday's flag
func (s BarberSchedule) IsWorkingDay(date time.Time) bool {
	if exc := s.ExceptionFor(date); exc != nil {
		return exc.Active
	}
	return s.DayFor(date).Active
}

// Validate checks ingestion rules: canonical HH:MM allowed hours on half-hour boundaries,
// lunch start before end, exception dates in YYYY-MM-DD. Non-conforming entries are errors,
// they are never patched.
func (s BarberSchedule) Validate() error {
	for weekday, day := range s.WorkingDays {
		if _, err := ParseWeekday(string(weekday)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		for _, h := range day.AllowedHours {
			if err := h.Validate(); err != nil {
				return fmt.Errorf("%w: %s allowed hour: %w", ErrInvalidSchedule, weekday, err)
			}
			if h.Minutes()%SlotDurationMinutes != 0 {
				return fmt.Errorf("%w: %s allowed hour %q is not on a slot boundary", ErrInvalidSchedule, weekday, h)
			}
		}
	}

	if s.LunchBreak != nil {
		if err := s.LunchBreak.Start.Validate(); err != nil {
			return fmt.Errorf("%w: lunch start: %w", ErrInvalidSchedule, err)
		}
		if err := s.LunchBreak.End.Validate(); err != nil {
			return fmt.Errorf("%w: lunch end: %w", ErrInvalidSchedule, err)
		}
		if !s.LunchBreak.Start.IsBefore(s.LunchBreak.End) {
			return fmt.Errorf("%w: lunch start %s must be before end %s",
				ErrInvalidSchedule, s.LunchBreak.Start, s.LunchBreak.End)
		}
	}

	for _, exc := range s.Exceptions {
		if _, err := time.Parse(DateFormat, exc.Date); err != nil {
			return fmt.Errorf("%w: exception date %q: %v", ErrInvalidSchedule, exc.Date, err)
		}
	}

	return nil
}
