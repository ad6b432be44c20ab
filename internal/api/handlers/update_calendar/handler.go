package update_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars/models"
)

const (
	msgInvalidCalendarID  = "некорректный ID ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoFields           = "не передано ни одного поля для обновления"
	msgNotFound           = "ресурс не найден"
	msgNameTaken          = "ресурс с таким именем уже существует"
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

// Handle PATCH /api/v1/resources/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /resources/{id} - Invalid calendar ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendarID)
		return
	}

	var req models.UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /resources/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, calendars.ErrNoFieldsToUpdate):
			handlers.RespondBadRequest(w, msgNoFields)

		case errors.Is(err, calendars.ErrInvalidInput):
			h.logger.Warn("PATCH /resources/{id} - Validation failed: calendar_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, calendars.ErrCalendarNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendars.ErrNameTaken):
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("PATCH /resources/{id} - Failed to update calendar: calendar_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /resources/{id} - Calendar updated: calendar_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
