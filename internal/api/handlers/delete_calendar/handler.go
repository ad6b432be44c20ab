package delete_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars"
)

const (
	msgInvalidCalendarID = "некорректный ID ресурса"
	msgNotFound          = "ресурс не найден"
	msgHasBookings       = "нельзя удалить ресурс, на который есть бронирования"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/resources/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /resources/{id} - Invalid calendar ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendarID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, calendars.ErrCalendarNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendars.ErrCalendarHasBookings):
			handlers.RespondConflict(w, msgHasBookings)

		default:
			h.logger.Error("DELETE /resources/{id} - Failed to delete calendar: calendar_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /resources/{id} - Calendar deleted: calendar_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
