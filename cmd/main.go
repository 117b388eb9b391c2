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

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
	adminBookingsHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/admin_bookings"
	adminLoginHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/admin_login"
	confirmBookingHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/export_bookings"
	getAvailabilityHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/get_availability"
	listMakesHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/list_makes"
	listModelsHandler "github.com/m04kA/RIZZA-BookingService/internal/api/handlers/list_models"
	"github.com/m04kA/RIZZA-BookingService/internal/api/middleware"
	"github.com/m04kA/RIZZA-BookingService/internal/api/session"
	"github.com/m04kA/RIZZA-BookingService/internal/config"
	bookingRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/RIZZA-BookingService/internal/integrations/mailer"
	bookingsService "github.com/m04kA/RIZZA-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/RIZZA-BookingService/internal/service/catalog"
	confirmBookingUC "github.com/m04kA/RIZZA-BookingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/RIZZA-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/RIZZA-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/RIZZA-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RIZZA-BookingService/pkg/logger"
	"github.com/m04kA/RIZZA-BookingService/pkg/metrics"
	"github.com/m04kA/RIZZA-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/RIZZA-BookingService/pkg/txmanager"
	"github.com/m04kA/RIZZA-BookingService/pkg/types"
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

	log.Info("Starting RIZZA-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Параметры дневной лестницы слотов
	openTime, err := types.NewTimeStringFromString(cfg.Booking.OpenTime)
	if err != nil {
		log.Fatal("Invalid booking.open_time %q: %v", cfg.Booking.OpenTime, err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.Booking.CloseTime)
	if err != nil {
		log.Fatal("Invalid booking.close_time %q: %v", cfg.Booking.CloseTime, err)
	}

	// Ключи административной сессии
	hashKey, blockKey, err := cfg.Admin.DecodeCookieKeys()
	if err != nil {
		log.Fatal("Invalid admin cookie keys: %v", err)
	}

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

	// Почтовый канал подтверждений
	mailClient := mailer.NewClient(mailer.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		User:        cfg.SMTP.User,
		Password:    cfg.SMTP.Password,
		From:        cfg.SMTP.From,
		BCCInternal: cfg.SMTP.BCCInternal,
	}, log)
	if mailClient.Configured() {
		log.Info("Mail channel configured (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Warn("Mail channel NOT configured: booking creation will fail until smtp.host is set")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		vehicleRepository *vehicleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(vehicleRepository, cfg.Catalog.CacheTTL(), log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		mailClient,
		txMgr,
		cfg.Booking.ConfirmWindow(),
		createBookingUC.SlotLadder{
			OpenTime:    openTime,
			CloseTime:   closeTime,
			StepMinutes: cfg.Booking.SlotDurationMinutes,
		},
		cfg.Frontend.BaseURL,
		log,
	)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(bookingRepository, log)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		cfg.Booking.ConfirmWindow(),
		getAvailabilityUC.SlotLadder{
			OpenTime:    openTime,
			CloseTime:   closeTime,
			StepMinutes: cfg.Booking.SlotDurationMinutes,
		},
		log,
	)

	// Административная сессия
	sessions := session.NewManager(hashKey, blockKey)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listMakes := listMakesHandler.NewHandler(catalogSvc, log)
	listModels := listModelsHandler.NewHandler(catalogSvc, log)
	adminLogin := adminLoginHandler.NewHandler(sessions, cfg.Admin.Username, cfg.Admin.Password, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingsSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Подтверждение бронирования по токену из письма
	api.HandleFunc("/bookings/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Доступность слотов на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Справочник автомобилей
	api.HandleFunc("/vehicles/makes", listMakes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/models", listModels.Handle).Methods(http.MethodGet)

	// Вход и выход администратора
	api.HandleFunc("/admin/login", adminLogin.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminLogin.HandleLogout).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (сессия администратора или HTTP Basic)
	// ============================================================

	adminAuth := middleware.AdminAuth(sessions, cfg.Admin.Username, cfg.Admin.Password)

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(adminAuth)

	// Административный список бронирований
	protected.HandleFunc("/bookings", adminBookings.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", adminBookings.HandleGet).Methods(http.MethodGet)

	// CSV-экспорт бронирований (тот же контур доступа, что и админ-список)
	api.Handle("/bookings/export.csv", adminAuth(http.HandlerFunc(exportBookings.Handle))).Methods(http.MethodGet)

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
