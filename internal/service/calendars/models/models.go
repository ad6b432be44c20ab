package models

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Request модели

// CreateCalendarRequest запрос на создание ресурса
type CreateCalendarRequest struct {
	Name             string `json:"name"`
	Active           *bool  `json:"active,omitempty"` // по умолчанию true
	HourlyPriceCents *int64 `json:"hourlyPriceCents,omitempty"`
	ThumbnailID      *int64 `json:"thumbnailId,omitempty"`
}

// UpdateCalendarRequest частичное обновление ресурса
type UpdateCalendarRequest struct {
	Name             *string `json:"name,omitempty"`
	Active           *bool   `json:"active,omitempty"`
	HourlyPriceCents *int64  `json:"hourlyPriceCents,omitempty"`
	ThumbnailID      *int64  `json:"thumbnailId,omitempty"`
}

// ToDomainUpdate конвертирует запрос в доменное обновление
func (r *UpdateCalendarRequest) ToDomainUpdate() domain.CalendarUpdate {
	return domain.CalendarUpdate{
		Name:             r.Name,
		Active:           r.Active,
		HourlyPriceCents: r.HourlyPriceCents,
		ThumbnailID:      r.ThumbnailID,
	}
}

// Response модели

// CalendarResponse ответ с данными ресурса
type CalendarResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Active           bool      `json:"active"`
	HourlyPriceCents *int64    `json:"hourlyPriceCents"`
	ThumbnailID      *int64    `json:"thumbnailId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CalendarListResponse ответ со списком ресурсов
type CalendarListResponse struct {
	Calendars []CalendarResponse `json:"calendars"`
}

// FromDomainCalendar конвертирует domain модель в DTO
func FromDomainCalendar(c *domain.Calendar) *CalendarResponse {
	if c == nil {
		return nil
	}

	return &CalendarResponse{
		ID:               c.ID,
		Name:             c.Name,
		Active:           c.Active,
		HourlyPriceCents: c.HourlyPriceCents,
		ThumbnailID:      c.ThumbnailID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// FromDomainCalendarList конвертирует список domain моделей в DTO
func FromDomainCalendarList(calendars []*domain.Calendar) *CalendarListResponse {
	resp := &CalendarListResponse{
		Calendars: make([]CalendarResponse, 0, len(calendars)),
	}

	for _, c := range calendars {
		if item := FromDomainCalendar(c); item != nil {
			resp.Calendars = append(resp.Calendars, *item)
		}
	}

	return resp
}
