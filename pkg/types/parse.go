package types

import (
	"fmt"
	"strings"
)

const (
	minutesPerDay = 24 * 60
	secondsPerDay = minutesPerDay * 60
)

// parseClock разбирает "HH:MM" (withSeconds=false) или "HH:MM:SS" (withSeconds=true).
// Часы, минуты и секунды должны быть ровно двузначными.
func parseClock(s string, withSeconds bool) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")

	expected := 2
	if withSeconds {
		expected = 3
	}
	if len(parts) != expected {
		return 0, 0, 0, fmt.Errorf("%w: %q: expected %d parts, got %d", ErrInvalidTimeFormat, s, expected, len(parts))
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		v, ok := parseTwoDigits(part)
		if !ok {
			return 0, 0, 0, fmt.Errorf("%w: %q: part %q is not a two-digit number", ErrInvalidTimeFormat, s, part)
		}
		values[i] = v
	}

	hour, minute = values[0], values[1]
	if withSeconds {
		second = values[2]
	}

	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, fmt.Errorf("%w: %q: value out of range", ErrInvalidTimeFormat, s)
	}

	return hour, minute, second, nil
}

func parseTwoDigits(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
