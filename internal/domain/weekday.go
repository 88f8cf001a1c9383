package domain

import (
	"fmt"
	"time"
)

// Weekday lowercase english weekday name used as the working-days key
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays in calendar order starting from Monday
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayByTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the weekday key for a calendar date
func WeekdayOf(date time.Time) Weekday {
	return weekdayByTime[date.Weekday()]
}

// ParseWeekday validates a weekday key
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range AllWeekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// TimeWeekday converts the key back to time.Weekday
func (w Weekday) TimeWeekday() (time.Weekday, bool) {
	for tw, d := range weekdayByTime {
		if d == w {
			return tw, true
		}
	}
	return time.Sunday, false
}
