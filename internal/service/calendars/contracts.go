package calendars

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// CalendarRepository интерфейс репозитория ресурсов
type CalendarRepository interface {
	List(ctx context.Context) ([]*domain.Calendar, error)
	GetByID(ctx context.Context, id int64) (*domain.Calendar, error)
	GetByName(ctx context.Context, name string) (*domain.Calendar, error)
	Create(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error)
	Update(ctx context.Context, id int64, upd domain.CalendarUpdate) (*domain.Calendar, error)
	Delete(ctx context.Context, id int64) error
}

// BookingCounter считает брони, ссылающиеся на ресурс
type BookingCounter interface {
	CountByCalendar(ctx context.Context, calendarID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
