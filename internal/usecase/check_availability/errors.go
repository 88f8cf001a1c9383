package check_availability

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("check_availability: barber not found")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с началом 30-минутного слота
	ErrInvalidTimeSlot = errors.New("check_availability: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
