package daily_overview

import "errors"

var (
	// ErrInvalidDate возвращается, если дата отчёта не задана
	ErrInvalidDate = errors.New("daily_overview: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("daily_overview: internal error")
)
