package daily_overview

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	dailyOverview "github.com/m04kA/SMC-TableBooking/internal/usecase/daily_overview"
)

type DailyOverviewUseCase interface {
	Execute(ctx context.Context, req *dailyOverview.Request) (*domain.DailyOverview, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
