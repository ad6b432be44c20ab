package calendars

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	calendarRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars/models"
	"github.com/m04kA/SMC-TableBooking/pkg/ptr"
)

// Service реестр бронируемых ресурсов
type Service struct {
	calendarRepo CalendarRepository
	bookings     BookingCounter
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(
	calendarRepo CalendarRepository,
	bookings BookingCounter,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		bookings:     bookings,
		txManager:    txManager,
		logger:       logger,
	}
}

// List возвращает все ресурсы, сначала новые
// Фильтрация по active остаётся на стороне потребителя
func (s *Service) List(ctx context.Context) (*models.CalendarListResponse, error) {
	calendars, err := s.calendarRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCalendars: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCalendars: fetched %d calendars", len(calendars))
	return models.FromDomainCalendarList(calendars), nil
}

// GetByID получает ресурс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CalendarResponse, error) {
	calendar, err := s.calendarRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("GetCalendar: calendar id=%d not found", id)
			return nil, ErrCalendarNotFound
		}
		s.logger.Error("GetCalendar: repository error for calendar id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCalendar(calendar), nil
}

// Create создает ресурс; имя должно быть уникальным
func (s *Service) Create(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Info("CreateCalendar: name=%q", name)

	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(req.HourlyPriceCents); err != nil {
		return nil, err
	}
	if err := validateThumbnail(req.ThumbnailID); err != nil {
		return nil, err
	}

	if err := s.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	created, err := s.calendarRepo.Create(ctx, &domain.Calendar{
		Name:             name,
		Active:           ptr.Deref(req.Active, true),
		HourlyPriceCents: req.HourlyPriceCents,
		ThumbnailID:      req.ThumbnailID,
	})
	if err != nil {
		if errors.Is(err, calendarRepo.ErrNameTaken) {
			s.logger.Warn("CreateCalendar: name=%q already taken", name)
			return nil, ErrNameTaken
		}
		s.logger.Error("CreateCalendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCalendar: created calendar id=%d", created.ID)
	return models.FromDomainCalendar(created), nil
}

// Update частично обновляет ресурс
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error) {
	upd := req.ToDomainUpdate()
	if upd.IsEmpty() {
		s.logger.Warn("UpdateCalendar: no fields to update for calendar id=%d", id)
		return nil, ErrNoFieldsToUpdate
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		upd.Name = &name
	}
	if err := validatePrice(upd.HourlyPriceCents); err != nil {
		return nil, err
	}
	if err := validateThumbnail(upd.ThumbnailID); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if err := s.ensureNameFree(ctx, *upd.Name, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.calendarRepo.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, calendarRepo.ErrCalendarNotFound):
			s.logger.Warn("UpdateCalendar: calendar id=%d not found", id)
			return nil, ErrCalendarNotFound
		case errors.Is(err, calendarRepo.ErrNameTaken):
			s.logger.Warn("UpdateCalendar: name already taken, calendar id=%d", id)
			return nil, ErrNameTaken
		}
		s.logger.Error("UpdateCalendar: repository error for calendar id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCalendar: updated calendar id=%d", id)
	return models.FromDomainCalendar(updated), nil
}

// Delete удаляет ресурс
// Пока на ресурс ссылается хотя бы одна бронь, удаление отклоняется.
// Строка ресурса блокируется в транзакции, поэтому параллельное создание брони дождётся её завершения
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteCalendar: deleting calendar id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.calendarRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
				return ErrCalendarNotFound
			}
			return fmt.Errorf("%w: Delete - get calendar: %w", ErrInternal, err)
		}

		count, err := s.bookings.CountByCalendar(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - count bookings: %w", ErrInternal, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %d bookings reference calendar", ErrCalendarHasBookings, count)
		}

		if err := s.calendarRepo.Delete(txCtx, id); err != nil {
			switch {
			case errors.Is(err, calendarRepo.ErrCalendarNotFound):
				return ErrCalendarNotFound
			case errors.Is(err, calendarRepo.ErrCalendarReferenced):
				return ErrCalendarHasBookings
			}
			return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCalendarNotFound):
			s.logger.Warn("DeleteCalendar: calendar id=%d not found", id)
		case errors.Is(err, ErrCalendarHasBookings):
			s.logger.Warn("DeleteCalendar: calendar id=%d rejected: %v", id, err)
		case errors.Is(err, ErrInternal):
			s.logger.Error("DeleteCalendar: failed for calendar id=%d: %v", id, err)
		default:
			s.logger.Error("DeleteCalendar: transaction failed for calendar id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - transaction: %v", ErrInternal, err)
		}
		return err
	}

	s.logger.Info("DeleteCalendar: deleted calendar id=%d", id)
	return nil
}

// ensureNameFree проверяет, что имя не занято другим ресурсом (selfID исключается)
func (s *Service) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.calendarRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			return nil
		}
		s.logger.Error("ensureNameFree: repository error for name=%q: %v", name, err)
		return fmt.Errorf("%w: ensureNameFree - repository error: %v", ErrInternal, err)
	}

	if existing.ID != selfID {
		s.logger.Warn("ensureNameFree: name=%q already used by calendar id=%d", name, existing.ID)
		return ErrNameTaken
	}

	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCalendarNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCalendarNameLen)
	}
	return nil
}

func validatePrice(price *int64) error {
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: hourlyPriceCents must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateThumbnail(id *int64) error {
	if id != nil && *id <= 0 {
		return fmt.Errorf("%w: thumbnailId must be positive", ErrInvalidInput)
	}
	return nil
}
