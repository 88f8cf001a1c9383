package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if err := validateName("clientName", req.ClientName, domain.MaxClientNameLength); err != nil {
		return err
	}

	if err := validateName("serviceName", req.ServiceName, domain.MaxServiceNameLength); err != nil {
		return err
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %w", ErrInvalidInput, err)
	}

	if req.StartTime.Minutes()%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: startTime %s is not a slot start", ErrInvalidTimeSlot, req.StartTime)
	}

	if req.DurationMinutes < domain.MinAppointmentMinutes || req.DurationMinutes > domain.MaxAppointmentMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinAppointmentMinutes, domain.MaxAppointmentMinutes)
	}

	if req.DurationMinutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes must be a multiple of %d", ErrInvalidInput, domain.SlotDurationMinutes)
	}

	return nil
}

func validateName(field, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, maxLength)
	}
	return nil
}

// validateBookingTime проверяет, что дата не в прошлом, а сегодня время начала еще не наступило
func validateBookingTime(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	// Если дата записи не сегодня, проверка времени не нужна
	if !agenda.IsSameDay(date, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s has already passed", ErrTooLateToBook, startTime)
	}

	return nil
}

// coveredSlots возвращает начала всех 30-минутных слотов интервала [start, start+duration)
func coveredSlots(start types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	count := durationMinutes / domain.SlotDurationMinutes
	result := make([]types.TimeString, 0, count)

	for i := 0; i < count; i++ {
		s, err := start.AddMinutes(i * domain.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment runs past midnight", ErrInvalidTimeSlot)
		}
		result = append(result, s)
	}

	return result, nil
}

// validateInsideGrid проверяет, что каждый слот записи есть в сетке дня
func validateInsideGrid(starts []types.TimeString, grid []domain.TimeSlot) error {
	inGrid := make(map[types.TimeString]struct{}, len(grid))
	for _, s := range grid {
		inGrid[s.Start] = struct{}{}
	}

	for _, s := range starts {
		if _, ok := inGrid[s]; !ok {
			return fmt.Errorf("%w: slot %s is outside the operating window", ErrInvalidTimeSlot, s)
		}
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
