package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	calendarRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/calendar"
)

// UseCase use case для получения свободного времени ресурса на день
type UseCase struct {
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	utcOffset time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		location:     time.FixedZone("venue", int(utcOffset.Seconds())),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных интервалов
// Выключенный ресурс не бронируется, поэтому свободных интервалов у него нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CalendarID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: calendar id and date are required", ErrInvalidInput)
	}

	y, m, d := req.Date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	to := from.AddDate(0, 0, 1)

	uc.logger.Info("GetAvailability: calendar=%d, date=%s", req.CalendarID, from.Format(domain.DateFormat))

	calendar, err := uc.calendarRepo.GetByID(ctx, req.CalendarID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			uc.logger.Warn("GetAvailability: calendar id=%d not found", req.CalendarID)
			return nil, ErrCalendarNotFound
		}
		uc.logger.Error("GetAvailability: failed to get calendar id=%d: %v", req.CalendarID, err)
		return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	}

	resp := &Response{
		CalendarID: calendar.ID,
		Date:       from,
		Active:     calendar.Active,
		Slots:      []FreeSlot{},
	}
	if !calendar.Active {
		return resp, nil
	}

	bookings, err := uc.bookingRepo.ListByCalendar(ctx, req.CalendarID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for calendar=%d: %v", req.CalendarID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp.Slots = freeSlots(from, to, uc.timeProvider.Now(), bookings)
	for i := range resp.Slots {
		resp.Slots[i].Start = resp.Slots[i].Start.In(uc.location)
		resp.Slots[i].End = resp.Slots[i].End.In(uc.location)
	}

	uc.logger.Info("GetAvailability: calendar=%d, date=%s, free slots=%d",
		req.CalendarID, from.Format(domain.DateFormat), len(resp.Slots))

	return resp, nil
}
