package create_calendar

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, calendars.ErrInvalidInput):
			h.logger.Warn("POST /resources - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, calendars.ErrNameTaken):
			h.logger.Warn("POST /resources - Name taken: name=%q", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("POST /resources - Failed to create calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.GetAdminSubject(r.Context())
	h.logger.Info("POST /resources - Calendar created: calendar_id=%d, admin=%s", resp.ID, admin)

	w.Header().Set("Location", fmt.Sprintf("/api/v1/resources/%d", resp.ID))
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
