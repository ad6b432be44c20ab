package domain

import "time"

// Calendar бронируемый ресурс (бильярдный или снукерный стол)
type Calendar struct {
	ID               int64
	Name             string
	Active           bool
	HourlyPriceCents *int64 // nil = цена неизвестна, ресурс не приносит выручку в отчёте
	ThumbnailID      *int64 // слабая ссылка на медиа, без каскада
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPrice returns true if the hourly price is known
func (c *Calendar) HasPrice() bool {
	return c.HourlyPriceCents != nil
}

// CalendarUpdate частичное обновление ресурса; nil поле не меняется
type CalendarUpdate struct {
	Name             *string
	Active           *bool
	HourlyPriceCents *int64
	ThumbnailID      *int64
}

// IsEmpty returns true if no field is set
func (u *CalendarUpdate) IsEmpty() bool {
	return u.Name == nil && u.Active == nil && u.HourlyPriceCents == nil && u.ThumbnailID == nil
}
