package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CalendarID    int64   `json:"calendarId"`
	Start         string  `json:"start"` // RFC3339, "2030-03-10T18:00:00+02:00"
	End           string  `json:"end"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerNotes *string `json:"customerNotes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	CalendarID    int64   `json:"calendarId"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerNotes *string `json:"customerNotes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return &createBooking.Request{
		CalendarID:    r.CalendarID,
		Start:         start,
		End:           end,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		CustomerNotes: r.CustomerNotes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CalendarID:    resp.CalendarID,
		Start:         resp.Start.UTC().Format(time.RFC3339),
		End:           resp.End.UTC().Format(time.RFC3339),
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		CustomerNotes: resp.CustomerNotes,
		CreatedAt:     resp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
