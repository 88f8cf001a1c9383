package types

import "errors"

var (
	// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует формату HH:MM / HH:MM:SS
	// или часы/минуты выходят за допустимый диапазон
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда арифметика со временем выходит за пределы суток
	ErrTimeOverflow = errors.New("time is out of day range")
)
