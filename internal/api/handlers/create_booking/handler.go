package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgSlotNotAvailable   = "выбранный интервал уже занят"
	msgCalendarNotFound   = "ресурс не найден"
	msgCalendarInactive   = "ресурс недоступен для бронирования"
	msgStartInPast        = "время начала уже прошло"
	msgEndBeforeStart     = "время окончания должно быть позже времени начала"
	msgDurationTooShort   = "минимальная длительность бронирования 60 минут"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: calendar_id=%d", req.CalendarID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCalendarNotFound):
			h.logger.Warn("POST /bookings - Calendar not found: calendar_id=%d", req.CalendarID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, createBooking.ErrCalendarInactive):
			handlers.RespondBadRequest(w, msgCalendarInactive)

		case errors.Is(err, createBooking.ErrStartInPast):
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrEndBeforeStart):
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, createBooking.ErrDurationTooShort):
			handlers.RespondBadRequest(w, msgDurationTooShort)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: calendar_id=%d, error=%v", req.CalendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, calendar_id=%d",
		result.ID, result.CalendarID)

	w.Header().Set("Location", fmt.Sprintf("/api/v1/bookings/%d", result.ID))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
