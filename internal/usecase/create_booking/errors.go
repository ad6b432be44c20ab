package create_booking

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда ресурс не найден
	ErrCalendarNotFound = errors.New("create_booking: calendar not found")

	// ErrCalendarInactive возвращается при попытке забронировать выключенный ресурс
	ErrCalendarInactive = errors.New("create_booking: calendar is not active")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующей бронью
	ErrSlotNotAvailable = errors.New("create_booking: time slot unavailable")

	// ErrStartInPast возвращается, когда начало брони уже прошло
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrEndBeforeStart возвращается, когда конец не позже начала
	ErrEndBeforeStart = errors.New("create_booking: end time must be after start time")

	// ErrDurationTooShort возвращается, когда бронь короче минимальной длительности
	ErrDurationTooShort = errors.New("create_booking: booking is shorter than minimum duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
