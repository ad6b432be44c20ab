package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CalendarID    int64
	Start         time.Time // начало, включительно
	End           time.Time // конец, не включительно
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CustomerNotes *string // опционально
}

// Response модель ответа с созданным бронированием
type Response struct {
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
