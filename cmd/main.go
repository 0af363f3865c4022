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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/check_availability"
	checkClientHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/check_client"
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/dispatch"
	manageAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/manage_appointment"
	registerClientHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/register_client"
	scheduleAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/schedule_appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/client"
	unitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/unit"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	clientsService "github.com/m04kA/SMC-SchedulingService/internal/service/clients"
	"github.com/m04kA/SMC-SchedulingService/internal/service/timezone"
	cancelBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (nil, если выключены: все методы nil-безопасны)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Таблица смещений часовых поясов из конфига
	offsets, err := timezone.NewOffsetTable(cfg.Scheduling.Timezones, cfg.Scheduling.DefaultOffset)
	if err != nil {
		log.Fatal("Invalid timezone table: %v", err)
	}
	normalizer := timezone.NewNormalizer(offsets)

	// Репозитории
	unitRepository := unitRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	clientSvc := clientsService.NewService(clientRepository, metricsCollector, log)
	bookingSvc := bookingsService.NewService(bookingRepository, unitRepository, normalizer, txMgr, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		unitRepository,
		normalizer,
		cfg.Scheduling.SlotStepMinutes,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		unitRepository,
		clientSvc,
		normalizer,
		txMgr,
		metricsCollector,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		unitRepository,
		normalizer,
		txMgr,
		metricsCollector,
		log,
	)

	// Handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	scheduleAppointment := scheduleAppointmentHandler.NewHandler(createBookingUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelBookingUseCase, log)
	checkClient := checkClientHandler.NewHandler(clientSvc, log)
	registerClient := registerClientHandler.NewHandler(clientSvc, log)
	manageAppointment := manageAppointmentHandler.NewHandler(bookingSvc, log)

	dispatcher := dispatch.NewDispatcher(log)
	dispatcher.Handle(dispatch.ActionCheckAvailability, checkAvailability.Handle)
	dispatcher.Handle(dispatch.ActionScheduleAppointment, scheduleAppointment.Handle)
	dispatcher.Handle(dispatch.ActionCancelAppointment, cancelAppointment.Handle)
	dispatcher.Handle(dispatch.ActionCheckClient, checkClient.Handle)
	dispatcher.Handle(dispatch.ActionRegisterClient, registerClient.Handle)
	dispatcher.Handle(dispatch.ActionGetAppointment, manageAppointment.HandleGet)
	dispatcher.Handle(dispatch.ActionConfirmAppointment, manageAppointment.HandleConfirm)
	dispatcher.Handle(dispatch.ActionCompleteAppointment, manageAppointment.HandleComplete)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if err := wrappedDB.PingContext(ctx); err != nil {
			log.Warn("Health check failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PROTECTED ROUTES (общий секрет в заголовке)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKey(cfg.Auth.APIKey, cfg.Auth.Header, log))
	dispatcher.RegisterRoutes(api, "/scheduling")
	log.Info("Scheduling actions registered: %v", dispatcher.Actions())

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
