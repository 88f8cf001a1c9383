package agenda

import "errors"

var (
	// ErrInvalidWindow возвращается, когда окно работы салона задано некорректно
	ErrInvalidWindow = errors.New("agenda: invalid operating window")
)
