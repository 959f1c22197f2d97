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

	adminLoginHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/admin_login"
	changePasswordHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/change_password"
	createBookingHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/delete_service"
	exportReportHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/export_report"
	getAdminBookingsHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/get_admin_bookings"
	getAvailabilitySettingsHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/get_availability_settings"
	getAvailableDatesHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/get_available_slots"
	getReportSummaryHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/get_report_summary"
	getUserHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/get_user_bookings"
	listServicesHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/list_services"
	registerUserHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/register_user"
	updateAvailabilitySettingsHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/update_availability_settings"
	updateServiceHandler "github.com/herica-studio/StudioBookingService/internal/api/handlers/update_service"
	"github.com/herica-studio/StudioBookingService/internal/api/middleware"
	"github.com/herica-studio/StudioBookingService/internal/config"
	adminauthRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/adminauth"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
	bookingRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/catalog"
	userRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/user"
	authService "github.com/herica-studio/StudioBookingService/internal/service/auth"
	availabilityService "github.com/herica-studio/StudioBookingService/internal/service/availability"
	bookingsService "github.com/herica-studio/StudioBookingService/internal/service/bookings"
	catalogService "github.com/herica-studio/StudioBookingService/internal/service/catalog"
	reportsService "github.com/herica-studio/StudioBookingService/internal/service/reports"
	usersService "github.com/herica-studio/StudioBookingService/internal/service/users"
	createBookingUC "github.com/herica-studio/StudioBookingService/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/herica-studio/StudioBookingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/herica-studio/StudioBookingService/internal/usecase/get_available_slots"
	"github.com/herica-studio/StudioBookingService/pkg/dbmetrics"
	"github.com/herica-studio/StudioBookingService/pkg/logger"
	"github.com/herica-studio/StudioBookingService/pkg/metrics"
	"github.com/herica-studio/StudioBookingService/pkg/simpletxmanager"
	"github.com/herica-studio/StudioBookingService/pkg/txmanager"
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

	log.Info("Starting StudioBookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		catalogRepository      *catalogRepo.Repository
		bookingRepository      *bookingRepo.Repository
		userRepository         *userRepo.Repository
		adminauthRepository    *adminauthRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		adminauthRepository = adminauthRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		adminauthRepository = adminauthRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(adminauthRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	reportsSvc := reportsService.NewService(bookingsSvc, log)
	usersSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		availabilityRepository,
		cfg.Booking.HorizonDays,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		catalogRepository,
		bookingRepository,
		cfg.Booking.HorizonDays,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		availabilityRepository,
		catalogRepository,
		bookingRepository,
		userRepository,
		txMgr,
		cfg.Booking.HorizonDays,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(usersSvc, log)
	getUser := getUserHandler.NewHandler(usersSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	changePassword := changePasswordHandler.NewHandler(authSvc, log)
	getAvailabilitySettings := getAvailabilitySettingsHandler.NewHandler(availabilitySvc, log)
	updateAvailabilitySettings := updateAvailabilitySettingsHandler.NewHandler(availabilitySvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingsSvc, log)
	getReportSummary := getReportSummaryHandler.NewHandler(reportsSvc, log)
	exportReport := exportReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Профиль клиента
	api.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/current", getUser.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступность
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Вход администратора (пароль в теле запроса, без middleware)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Password header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	// Пароль администратора
	admin.HandleFunc("/password", changePassword.Handle).Methods(http.MethodPut)

	// Настройки доступности
	admin.HandleFunc("/availability", getAvailabilitySettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability", updateAvailabilitySettings.Handle).Methods(http.MethodPut)

	// Управление каталогом услуг
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// Журнал и отчеты
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reports/summary", getReportSummary.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reports/export", exportReport.Handle).Methods(http.MethodGet)

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
