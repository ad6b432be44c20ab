package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
// Создание живёт в usecase/create_booking
type Service struct {
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByCalendar возвращает все брони ресурса без фильтра по времени
// Неизвестный ресурс даёт ErrCalendarNotFound, а не пустой список
func (s *Service) ListByCalendar(ctx context.Context, calendarID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListByCalendar: fetching bookings for calendar=%d", calendarID)

	if _, err := s.calendarRepo.GetByID(ctx, calendarID); err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("ListByCalendar: calendar id=%d not found", calendarID)
			return nil, ErrCalendarNotFound
		}
		s.logger.Error("ListByCalendar: failed to get calendar id=%d: %v", calendarID, err)
		return nil, fmt.Errorf("%w: ListByCalendar - calendar repository error: %v", ErrInternal, err)
	}

	list, err := s.bookingRepo.ListByCalendar(ctx, calendarID)
	if err != nil {
		s.logger.Error("ListByCalendar: repository error for calendar=%d: %v", calendarID, err)
		return nil, fmt.Errorf("%w: ListByCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCalendar: fetched %d bookings for calendar=%d", len(list), calendarID)
	return models.FromDomainBookingList(list), nil
}

// Delete безвозвратно удаляет бронирование
// Повторное удаление того же id возвращает ErrBookingNotFound
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking id=%d", id)
	return nil
}
