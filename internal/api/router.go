package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
)

const apiPrefix = "/api/v1"

// Endpoint обработчик одного маршрута (handlers/<endpoint>.Handler)
type Endpoint interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Endpoints все обработчики сервиса
type Endpoints struct {
	Health Endpoint

	ListCalendars        Endpoint
	GetCalendar          Endpoint
	CreateCalendar       Endpoint
	UpdateCalendar       Endpoint
	DeleteCalendar       Endpoint
	ListCalendarBookings Endpoint
	GetAvailability      Endpoint

	CreateBooking Endpoint
	GetBooking    Endpoint
	DeleteBooking Endpoint

	DailyOverview Endpoint
}

// Options инфраструктура вокруг маршрутов; nil поля отключают соответствующий слой
type Options struct {
	Verifier       middleware.TokenVerifier
	Metrics        middleware.HTTPMetrics
	MetricsPath    string // пусто - эндпоинт метрик не публикуется
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	Logger         middleware.Logger
}

// NewRouter собирает маршруты и middleware
// Порядок снаружи внутрь: request id, access log, CORS, rate limit, метрики, admin auth
func NewRouter(e Endpoints, opts Options) http.Handler {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	r.HandleFunc("/health", e.Health.Handle).Methods(http.MethodGet)
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix(apiPrefix).Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/resources", e.ListCalendars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}", e.GetCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}/bookings", e.ListCalendarBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}/availability", e.GetAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", e.CreateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", e.GetBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", e.DeleteBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT)
	// ============================================================

	admin := api.NewRoute().Subrouter()
	admin.Use(middleware.AdminAuth(opts.Verifier, opts.Logger))

	admin.HandleFunc("/resources", e.CreateCalendar.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/resources/{id}", e.UpdateCalendar.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/resources/{id}", e.DeleteCalendar.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/bookings/daily-overview", e.DailyOverview.Handle).Methods(http.MethodGet)

	var h http.Handler = r
	if opts.RateLimiter != nil {
		h = opts.RateLimiter.Limit(opts.Logger)(h)
	}
	if len(opts.AllowedOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders:   []string{"Location", middleware.RequestIDHeader},
			AllowCredentials: true,
		}).Handler(h)
	}
	h = middleware.Logging(opts.Logger)(h)
	h = middleware.RequestID(h)

	return h
}
