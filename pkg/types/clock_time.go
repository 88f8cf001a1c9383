package types

import (
	"fmt"
	"math"
)

// ClockTime время суток с секундами в формате "HH:MM:SS".
// Используется для начала и окончания записей, приходящих из внешнего API в виде десятичных часов.
type ClockTime string

// EndOfDay последняя секунда суток. Конец записи, уходящей до полуночи (24.0 в десятичных часах)
const EndOfDay ClockTime = "23:59:59"

// NewClockTime парсит "HH:MM:SS"
func NewClockTime(s string) (ClockTime, error) {
	if _, _, _, err := parseClock(s, true); err != nil {
		return "", err
	}
	return ClockTime(s), nil
}

// ClockTimeFromTimeString расширяет "HH:MM" до "HH:MM:00"
func ClockTimeFromTimeString(t TimeString) (ClockTime, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return ClockTime(string(t) + ":00"), nil
}

// String возвращает строковое представление
func (c ClockTime) String() string {
	return string(c)
}

// Seconds возвращает количество секунд с начала суток, -1 для невалидного значения
func (c ClockTime) Seconds() int {
	h, m, s, err := parseClock(string(c), true)
	if err != nil {
		return -1
	}
	return h*3600 + m*60 + s
}

// Minutes возвращает количество целых минут с начала суток, -1 для невалидного значения
func (c ClockTime) Minutes() int {
	secs := c.Seconds()
	if secs < 0 {
		return -1
	}
	return secs / 60
}

// TimeString отбрасывает секунды
func (c ClockTime) TimeString() TimeString {
	if len(c) < 5 {
		return TimeString(c)
	}
	return TimeString(c[:5])
}

// Decimal переводит время в десятичные часы: 13:30:00 -> 13.5
func (c ClockTime) Decimal() (DecimalHours, error) {
	secs := c.Seconds()
	if secs < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(c))
	}
	return DecimalHours(float64(secs) / 3600), nil
}

// DecimalHours время суток в виде дробного количества часов (13.5 = 13:30)
type DecimalHours float64

// ToClock переводит десятичные часы в "HH:MM:SS":
// hours = floor(d), minutes = round((d - hours) * 60). 60 минут переносятся в следующий час.
func (d DecimalHours) ToClock() (ClockTime, error) {
	value := float64(d)
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return "", fmt.Errorf("%w: %v hours", ErrTimeOverflow, value)
	}

	hours := math.Floor(value)
	minutes := math.Round((value - hours) * 60)
	if minutes >= 60 {
		hours++
		minutes -= 60
	}

	if hours >= 24 {
		return "", fmt.Errorf("%w: %v hours", ErrTimeOverflow, value)
	}

	return ClockTime(fmt.Sprintf("%02d:%02d:00", int(hours), int(minutes))), nil
}
