package daily_overview

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// CalendarRepository интерфейс репозитория ресурсов
type CalendarRepository interface {
	List(ctx context.Context) ([]*domain.Calendar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
