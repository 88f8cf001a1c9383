package appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

const hoursPerDay = 24

// В таблице appointments начало и конец хранятся десятичными часами (13.5 = 13:30).
// Конвертация выполняется только на границе репозитория.

func toDecimalHours(t types.ClockTime) (float64, error) {
	d, err := t.Decimal()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}
	return float64(d), nil
}

func fromDecimalHours(v float64) (types.ClockTime, error) {
	c, err := types.DecimalHours(v).ToClock()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}
	return c, nil
}

// fromDecimalEndHours как fromDecimalHours, но конец ровно в полночь (24.0 или 23.9999,
// округленное до 24:00) становится types.EndOfDay
func fromDecimalEndHours(v float64) (types.ClockTime, error) {
	c, err := types.DecimalHours(v).ToClock()
	if errors.Is(err, types.ErrTimeOverflow) && v > 0 && v <= hoursPerDay {
		return types.EndOfDay, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}
	return c, nil
}
