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

	cancelBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_calendar"
	getVariantHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_variant"
	getVariantBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_variant_bookings"
	listProductVariantsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_product_variants"
	removeBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/remove_booking"
	updateVariantCapacityHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_variant_capacity"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	variantRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/variant"
	availabilityService "github.com/m04kA/SMC-HotelBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	variantsService "github.com/m04kA/SMC-HotelBookingService/internal/service/variants"
	admitBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/admit_booking"
	checkDayUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_day"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/keymutex"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

// timeoutLocker ограничивает ожидание блокировки варианта
// настроенным таймаутом поверх дедлайна вызывающего
type timeoutLocker struct {
	mu      *keymutex.Mutex
	timeout time.Duration
}

func (l *timeoutLocker) Lock(ctx context.Context, key int64) error {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.mu.Lock(ctx, key)
}

func (l *timeoutLocker) Unlock(key int64) {
	l.mu.Unlock(key)
}

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

	log.Info("Starting SMC-HotelBookingService...")
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
		bookingRepository *bookingRepo.Repository
		variantRepository *variantRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		variantRepository = variantRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		variantRepository = variantRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, variantRepository, log)
	variantSvc := variantsService.NewService(variantRepository, log)

	// Критические секции на id варианта
	variantLocker := &timeoutLocker{
		mu:      keymutex.New(),
		timeout: time.Duration(cfg.Booking.LockTimeout) * time.Second,
	}

	// Инициализируем use cases
	admitBookingUseCase := admitBookingUC.NewUseCase(
		bookingRepository,
		variantRepository,
		availabilitySvc,
		txMgr,
		variantLocker,
		metricsCollector,
		cfg.Booking.LegacyCartAggregation,
		log,
	)
	if cfg.Booking.LegacyCartAggregation {
		log.Warn("Legacy cart aggregation mode enabled")
	}

	checkDayUseCase := checkDayUC.NewUseCase(
		variantRepository,
		availabilitySvc,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(admitBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	removeBooking := removeBookingHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkDayUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(checkDayUseCase, log)
	getVariant := getVariantHandler.NewHandler(variantSvc, log)
	listProductVariants := listProductVariantsHandler.NewHandler(variantSvc, log)
	getVariantBookings := getVariantBookingsHandler.NewHandler(bookingSvc, log)
	updateVariantCapacity := updateVariantCapacityHandler.NewHandler(variantSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Варианты товара (типы номеров)
	api.HandleFunc("/products/{productId}/variants", listProductVariants.Handle).Methods(http.MethodGet)

	// Карточка варианта с вместимостью
	api.HandleFunc("/variants/{variantId}", getVariant.Handle).Methods(http.MethodGet)

	// Проверка доступности одного дня
	api.HandleFunc("/variants/{variantId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Календарная проекция доступности по диапазону
	api.HandleFunc("/variants/{variantId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Прием бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Удаление бронирования (терминальный статус removed)
	protected.HandleFunc("/bookings/{bookingId}", removeBooking.Handle).Methods(http.MethodDelete)

	// --- Управление вариантами ---
	// Список бронирований варианта
	protected.HandleFunc("/variants/{variantId}/bookings", getVariantBookings.Handle).Methods(http.MethodGet)

	// Изменение вместимости варианта
	protected.HandleFunc("/variants/{variantId}/capacity", updateVariantCapacity.Handle).Methods(http.MethodPut)

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
