package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.CalendarID <= 0 {
		return fmt.Errorf("%w: calendarId must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)

	if err := validateField("customerName", req.CustomerName); err != nil {
		return err
	}
	if err := validateField("customerEmail", req.CustomerEmail); err != nil {
		return err
	}
	if err := validateField("customerPhone", req.CustomerPhone); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(req.CustomerEmail)
	if err != nil || addr.Address != req.CustomerEmail {
		return fmt.Errorf("%w: customerEmail is not a valid address", ErrInvalidInput)
	}

	if req.CustomerNotes != nil && utf8.RuneCountInString(*req.CustomerNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: customerNotes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateInterval проверяет временные инварианты брони
// Каждое нарушение возвращает свою ошибку
func validateInterval(start, end, now time.Time) error {
	if !start.After(now) {
		return ErrStartInPast
	}

	if !end.After(start) {
		return ErrEndBeforeStart
	}

	if end.Sub(start) < domain.MinBookingDuration {
		return fmt.Errorf("%w: minimum is %d minutes", ErrDurationTooShort, int(domain.MinBookingDuration.Minutes()))
	}

	return nil
}

func validateField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if utf8.RuneCountInString(value) > domain.MaxCustomerFieldLen {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, name, domain.MaxCustomerFieldLen)
	}
	return nil
}

// findOverlap возвращает первую бронь, пересекающуюся с [start, end)
func findOverlap(start, end time.Time, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}
