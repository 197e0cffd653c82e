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

	addAvailabilityHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/add_availability"
	bookSessionHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/book_session"
	createBookingHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/get_client_bookings"
	getProviderBookingsHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/get_provider_bookings"
	getSettingsHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/get_settings"
	listAvailabilityHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/list_availability"
	removeAvailabilityHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/remove_availability"
	transitionBookingHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/transition_booking"
	updateSettingsHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/update_settings"
	"github.com/m04kA/EDU-SchedulingService/internal/api/middleware"
	"github.com/m04kA/EDU-SchedulingService/internal/config"
	availabilityRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/booking"
	sessionRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/sessionbooking"
	settingsRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/settings"
	directoryClient "github.com/m04kA/EDU-SchedulingService/internal/integrations/directory"
	notifyClient "github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
	paymentsClient "github.com/m04kA/EDU-SchedulingService/internal/integrations/payments"
	availabilityService "github.com/m04kA/EDU-SchedulingService/internal/service/availability"
	bookingsService "github.com/m04kA/EDU-SchedulingService/internal/service/bookings"
	settingsService "github.com/m04kA/EDU-SchedulingService/internal/service/settings"
	bookSessionUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/book_session"
	createBookingUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/create_booking"
	transitionBookingUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/transition_booking"
	"github.com/m04kA/EDU-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/logger"
	"github.com/m04kA/EDU-SchedulingService/pkg/metrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/EDU-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting EDU-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	directory := directoryClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	notifier := notifyClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Directory=%s, Notify=%s, Payments=%s)",
		cfg.DirectoryService.URL, cfg.NotifyService.URL, cfg.PaymentService.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		sessionRepository      *sessionRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		settingsRepository     *settingsRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		settingsSvc,
		directory,
		payments,
		notifier,
		txMgr,
		log,
	)

	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		payments,
		notifier,
		txMgr,
		log,
	)

	bookSessionUseCase := bookSessionUC.NewUseCase(
		sessionRepository,
		directory,
		payments,
		notifier,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	transitionBooking := transitionBookingHandler.NewHandler(transitionBookingUseCase, log)
	bookSession := bookSessionHandler.NewHandler(bookSessionUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingsSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingsSvc, log)
	addAvailability := addAvailabilityHandler.NewHandler(availabilitySvc, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	removeAvailability := removeAvailabilityHandler.NewHandler(availabilitySvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельное расписание провайдера
	api.HandleFunc("/providers/{providerId}/availability", listAvailability.Handle).Methods(http.MethodGet)

	// Настройки бронирования провайдера
	api.HandleFunc("/providers/{providerId}/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание эксклюзивного бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перевод бронирования в новый статус
	protected.HandleFunc("/bookings/{bookingId}/status", transitionBooking.Handle).Methods(http.MethodPatch)

	// Бронирование мест в групповом событии
	protected.HandleFunc("/events/{eventId}/bookings", bookSession.Handle).Methods(http.MethodPost)

	// Списки бронирований
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием и настройками ---
	protected.HandleFunc("/providers/{providerId}/availability", addAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/providers/{providerId}/availability/{windowId}", removeAvailability.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/providers/{providerId}/settings", updateSettings.Handle).Methods(http.MethodPut)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
