package domain

import "time"

// Booking подтверждённое бронирование ресурса на полуоткрытый интервал [Start, End)
type Booking struct {
	ID            int64
	CalendarID    int64
	Start         time.Time
	End           time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CustomerNotes *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Duration returns the booked duration
func (b *Booking) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Overlaps проверяет пересечение полуоткрытых интервалов
// Бронь, заканчивающаяся в T, не конфликтует с бронью, начинающейся в T
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && b.Start.Before(end)
}

