package get_availability

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-TableBooking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CalendarID int64      `json:"calendarId"`
	Date       string     `json:"date"`
	Active     bool       `json:"active"`
	Slots      []SlotItem `json:"slots"`
}

// SlotItem свободный интервал со сдвигом заведения
type SlotItem struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		CalendarID: resp.CalendarID,
		Date:       resp.Date.Format(domain.DateFormat),
		Active:     resp.Active,
		Slots:      make([]SlotItem, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		result.Slots = append(result.Slots, SlotItem{
			Start:           s.Start.Format(time.RFC3339),
			End:             s.End.Format(time.RFC3339),
			DurationMinutes: s.DurationMinutes,
		})
	}

	return result
}
