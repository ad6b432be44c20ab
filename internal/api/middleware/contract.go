package middleware

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/auth"
)

// TokenVerifier проверка административного токена (*auth.Verifier)
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// HTTPMetrics сбор метрик запросов (*metrics.Metrics)
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type contextKey string

const (
	adminSubjectKey contextKey = "admin_subject"
	requestIDKey    contextKey = "request_id"
)
