package get_availability

import "time"

// Request модель запроса свободного времени ресурса
type Request struct {
	CalendarID int64
	Date       time.Time // день в часовом поясе заведения, время игнорируется
}

// Response модель ответа со свободными интервалами
type Response struct {
	CalendarID int64
	Date       time.Time // полночь дня в часовом поясе заведения
	Active     bool
	Slots      []FreeSlot
}

// FreeSlot свободный полуоткрытый интервал [Start, End)
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
