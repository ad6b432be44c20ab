package daily_overview

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	dailyOverview "github.com/m04kA/SMC-TableBooking/internal/usecase/daily_overview"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	useCase DailyOverviewUseCase
	logger  Logger
}

func NewHandler(useCase DailyOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/daily-overview?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/daily-overview - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	report, err := h.useCase.Execute(r.Context(), &dailyOverview.Request{Date: date})
	if err != nil {
		if errors.Is(err, dailyOverview.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /admin/bookings/daily-overview - Failed to build report: date=%s, error=%v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainOverview(report))
}
