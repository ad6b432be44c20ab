package bookings

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCalendar(ctx context.Context, calendarID int64) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// CalendarRepository интерфейс репозитория ресурсов
type CalendarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Calendar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
