package daily_overview

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// OverviewResponse HTTP response model
// utilizationPercentage = activeTablesUsed / totalTables; tablesUsed считает и удалённые или неактивные ресурсы
type OverviewResponse struct {
	Date                  string       `json:"date"`
	TotalBookings         int          `json:"totalBookings"`
	TotalRevenueCents     int64        `json:"totalRevenueCents"`
	TablesUsed            int          `json:"tablesUsed"`
	ActiveTablesUsed      int          `json:"activeTablesUsed"`
	TotalTables           int          `json:"totalTables"`
	UtilizationPercentage float64      `json:"utilizationPercentage"`
	Bookings              []BookingRow `json:"bookings"`
}

// BookingRow строка отчёта; localStart/localEnd со сдвигом заведения
type BookingRow struct {
	ID            int64   `json:"id"`
	CalendarID    int64   `json:"calendarId"`
	CalendarName  string  `json:"calendarName"`
	TableType     string  `json:"tableType"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerNotes *string `json:"customerNotes,omitempty"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	LocalStart    string  `json:"localStart"`
	LocalEnd      string  `json:"localEnd"`
	DurationHours float64 `json:"durationHours"`
	PriceCents    *int64  `json:"priceCents"`
}

// FromDomainOverview конвертирует отчёт в HTTP response
func FromDomainOverview(o *domain.DailyOverview) *OverviewResponse {
	resp := &OverviewResponse{
		Date:                  o.Date.Format(domain.DateFormat),
		TotalBookings:         o.TotalBookings,
		TotalRevenueCents:     o.TotalRevenueCents,
		TablesUsed:            o.TablesUsed,
		ActiveTablesUsed:      o.ActiveTablesUsed,
		TotalTables:           o.TotalTables,
		UtilizationPercentage: o.UtilizationPercentage,
		Bookings:              make([]BookingRow, 0, len(o.Bookings)),
	}

	for _, b := range o.Bookings {
		resp.Bookings = append(resp.Bookings, BookingRow{
			ID:            b.ID,
			CalendarID:    b.CalendarID,
			CalendarName:  b.CalendarName,
			TableType:     b.TableType,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			CustomerPhone: b.CustomerPhone,
			CustomerNotes: b.CustomerNotes,
			Start:         b.Start.Format(time.RFC3339),
			End:           b.End.Format(time.RFC3339),
			LocalStart:    b.LocalStart.Format(time.RFC3339),
			LocalEnd:      b.LocalEnd.Format(time.RFC3339),
			DurationHours: b.DurationHours,
			PriceCents:    b.PriceCents,
		})
	}

	return resp
}
