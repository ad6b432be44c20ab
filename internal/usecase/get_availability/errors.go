package get_availability

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда ресурс не найден
	ErrCalendarNotFound = errors.New("get_availability: calendar not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
