package domain

import "time"

// Типы столов для отчёта (эвристика по имени ресурса)
const (
	TableTypeSnooker = "Snooker"
	TableTypePool    = "Pool"
	TableTypeTable   = "Table"
)

// UnknownCalendarName имя для брони, чей ресурс уже не найден
const UnknownCalendarName = "Unknown"

// DailyOverview операционный отчёт за один календарный день
type DailyOverview struct {
	Date                  time.Time
	TotalBookings         int
	TotalRevenueCents     int64
	TablesUsed            int // все ресурсы с бронями за день, включая неизвестные и неактивные
	ActiveTablesUsed      int // числитель занятости: активные ресурсы с бронями
	TotalTables           int // активные ресурсы
	UtilizationPercentage float64
	Bookings              []OverviewBooking
}

// OverviewBooking строка отчёта по одной брони
type OverviewBooking struct {
	ID            int64
	CalendarID    int64
	CalendarName  string
	TableType     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CustomerNotes *string
	Start         time.Time
	End           time.Time
	LocalStart    time.Time // время в часовом поясе заведения (фиксированный сдвиг)
	LocalEnd      time.Time
	DurationHours float64
	PriceCents    *int64 // nil если цена ресурса неизвестна
}
