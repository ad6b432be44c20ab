package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/calendar"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка идут в одной сериализуемой транзакции,
// строка ресурса заблокирована до коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: calendar=%d, start=%s, end=%s",
		req.CalendarID, req.Start.UTC().Format("2006-01-02T15:04:05Z"), req.End.UTC().Format("2006-01-02T15:04:05Z"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Временные инварианты относительно текущего момента
	now := uc.timeProvider.Now()
	if err := validateInterval(req.Start, req.End, now); err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверка ресурса, конфликтов и вставка атомарно для calendar_id
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Ресурс существует и активен (FOR UPDATE внутри транзакции)
		calendar, err := uc.calendarRepo.GetByID(txCtx, req.CalendarID)
		if err != nil {
			if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
				return ErrCalendarNotFound
			}
			return fmt.Errorf("%w: failed to get calendar: %w", ErrInternal, err)
		}
		if !calendar.Active {
			return ErrCalendarInactive
		}

		// 3.2. Все брони ресурса, проверка пересечения полуоткрытых интервалов
		existing, err := uc.bookingRepo.ListByCalendar(txCtx, req.CalendarID)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if other := findOverlap(req.Start, req.End, existing); other != nil {
			uc.logger.Warn("CreateBooking: slot overlaps booking id=%d on calendar=%d", other.ID, req.CalendarID)
			return ErrSlotNotAvailable
		}

		// 3.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CalendarID:    req.CalendarID,
			Start:         req.Start.UTC(),
			End:           req.End.UTC(),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			CustomerNotes: req.CustomerNotes,
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotOverlap):
				uc.logger.Warn("CreateBooking: overlap rejected by storage constraint on calendar=%d", req.CalendarID)
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrCalendarMissing):
				return ErrCalendarNotFound
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.metrics.IncBookingConflict()
		case errors.Is(err, ErrCalendarNotFound):
			uc.logger.Warn("CreateBooking: calendar id=%d not found", req.CalendarID)
		case errors.Is(err, ErrCalendarInactive):
			uc.logger.Warn("CreateBooking: calendar id=%d is not active", req.CalendarID)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		CalendarID:    result.CalendarID,
		Start:         result.Start,
		End:           result.End,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		CustomerNotes: result.CustomerNotes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
