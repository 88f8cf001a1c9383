package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %w", ErrInvalidInput, err)
	}

	if req.Time.Minutes()%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: %s is not a slot start", ErrInvalidTimeSlot, req.Time)
	}

	return nil
}

// buildSlot строит слот, начинающийся в start
func buildSlot(start types.TimeString) (domain.TimeSlot, error) {
	end, err := start.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	return domain.TimeSlot{Start: start, End: end, Display: start.Display()}, nil
}

// inGrid проверяет, что слот с началом start есть в сетке
func inGrid(slots []domain.TimeSlot, start types.TimeString) bool {
	for _, s := range slots {
		if s.Start == start {
			return true
		}
	}
	return false
}
