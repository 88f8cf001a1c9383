package appointments

import "errors"

var (
	// ErrCache возвращается при ошибках обращения к Redis
	ErrCache = errors.New("appointments.cache: redis error")

	// ErrDecode возвращается, когда снимок в кэше не удалось разобрать
	ErrDecode = errors.New("appointments.cache: failed to decode snapshot")
)
