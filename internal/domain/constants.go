package domain

import "time"

// Business validation constants
const (
	MinBookingDuration  = 60 * time.Minute // минимальная оплачиваемая единица
	MaxNotesLength      = 500
	MaxCustomerFieldLen = 255
	MaxCalendarNameLen  = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// DefaultVenueUTCOffset фиксированный сдвиг заведения (EET, без учёта летнего времени)
const DefaultVenueUTCOffset = 2 * time.Hour
