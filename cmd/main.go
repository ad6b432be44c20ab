package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-TableBooking/internal/api"
	createBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/create_booking"
	createCalendarHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/create_calendar"
	dailyOverviewHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/daily_overview"
	deleteBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/delete_booking"
	deleteCalendarHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/delete_calendar"
	getAvailabilityHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_calendar"
	healthHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/health"
	listCalendarBookingsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/list_calendar_bookings"
	listCalendarsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/list_calendars"
	updateCalendarHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/update_calendar"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/auth"
	"github.com/m04kA/SMC-TableBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-TableBooking/internal/infra/storage/migrations"
	bookingsService "github.com/m04kA/SMC-TableBooking/internal/service/bookings"
	calendarsService "github.com/m04kA/SMC-TableBooking/internal/service/calendars"
	createBookingUC "github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
	dailyOverviewUC "github.com/m04kA/SMC-TableBooking/internal/usecase/daily_overview"
	getAvailabilityUC "github.com/m04kA/SMC-TableBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-TableBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
	"github.com/m04kA/SMC-TableBooking/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TableBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики; nil коллектор все вызовы игнорирует
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	stopCh := make(chan struct{})

	// Подключаемся к базе данных
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer sqlDB.Close()

	// Настраиваем connection pool
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = sqlDB.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var db *dbmetrics.DB
	if cfg.Metrics.Enabled {
		db = dbmetrics.WrapWithDefault(sqlDB, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		db = dbmetrics.Wrap(sqlDB, nil)
	}

	// Мигратор держит своё соединение и закрывает его сам
	if cfg.Database.AutoMigrate {
		migrationDB, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to open migration connection: %v", err)
		}
		if err := migrations.Apply(migrationDB); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is up to date")
	}

	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		log.Fatal("Failed to initialize token verifier: %v", err)
	}

	// Инициализируем репозитории
	calendarRepository := calendarRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	calendarSvc := calendarsService.NewService(calendarRepository, bookingRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, calendarRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		calendarRepository,
		txMgr,
		metricsCollector,
		log,
	)
	dailyOverviewUseCase := dailyOverviewUC.NewUseCase(
		bookingRepository,
		calendarRepository,
		dailyOverviewUC.Venue{
			UTCOffset:    cfg.Venue.UTCOffset(),
			PoolSynonyms: cfg.Venue.PoolSynonyms,
		},
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		calendarRepository,
		cfg.Venue.UTCOffset(),
		log,
	)

	// Инициализируем handlers
	endpoints := api.Endpoints{
		Health:               healthHandler.NewHandler(db, log),
		ListCalendars:        listCalendarsHandler.NewHandler(calendarSvc, log),
		GetCalendar:          getCalendarHandler.NewHandler(calendarSvc, log),
		CreateCalendar:       createCalendarHandler.NewHandler(calendarSvc, log),
		UpdateCalendar:       updateCalendarHandler.NewHandler(calendarSvc, log),
		DeleteCalendar:       deleteCalendarHandler.NewHandler(calendarSvc, log),
		ListCalendarBookings: listCalendarBookingsHandler.NewHandler(bookingSvc, log),
		GetAvailability:      getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log),
		CreateBooking:        createBookingHandler.NewHandler(createBookingUseCase, log),
		GetBooking:           getBookingHandler.NewHandler(bookingSvc, log),
		DeleteBooking:        deleteBookingHandler.NewHandler(bookingSvc, log),
		DailyOverview:        dailyOverviewHandler.NewHandler(dailyOverviewUseCase, log),
	}

	opts := api.Options{
		Verifier:       verifier,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL())
		go limiter.Run(stopCh)
		opts.RateLimiter = limiter
		log.Info("Rate limit enabled: rps=%.1f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(endpoints, opts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики пула и очистку rate limiter
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
