package create_appointment

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrTooLateToBook возвращается, когда время начала сегодня уже прошло
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidTimeSlot возвращается, когда время не кратно 30 минутам или выходит за окно работы барбершопа
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда хотя бы один слот записи недоступен у барбера
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrConcurrentUpdate возвращается при конфликте с параллельной записью. Запрос можно повторить.
	ErrConcurrentUpdate = errors.New("create_appointment: concurrent update, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
