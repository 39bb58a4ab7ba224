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

	cancelReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/cancel_reservation"
	checkInHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/check_out"
	confirmReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/create_reservation"
	findAvailableRoomsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/find_available_rooms"
	getCalendarHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/get_calendar"
	getReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/get_reservation"
	getReservationPricingHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/get_reservation_pricing"
	getRoomHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/get_room"
	recordPaymentHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/record_payment"
	updateRoomStatusHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/update_room_status"
	"github.com/m04kA/HMS-ReservationService/internal/api/middleware"
	"github.com/m04kA/HMS-ReservationService/internal/config"
	assignmentRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/assignment"
	paymentRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	guestRegistryClient "github.com/m04kA/HMS-ReservationService/internal/integrations/guestregistry"
	paymentsService "github.com/m04kA/HMS-ReservationService/internal/service/payments"
	pricingService "github.com/m04kA/HMS-ReservationService/internal/service/pricing"
	reservationsService "github.com/m04kA/HMS-ReservationService/internal/service/reservations"
	roomsService "github.com/m04kA/HMS-ReservationService/internal/service/rooms"
	checkInUC "github.com/m04kA/HMS-ReservationService/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/HMS-ReservationService/internal/usecase/check_out"
	confirmReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/confirm_reservation"
	createReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
	findAvailableRoomsUC "github.com/m04kA/HMS-ReservationService/internal/usecase/find_available_rooms"
	projectCalendarUC "github.com/m04kA/HMS-ReservationService/internal/usecase/project_calendar"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/logger"
	"github.com/m04kA/HMS-ReservationService/pkg/metrics"
	"github.com/m04kA/HMS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-ReservationService/pkg/txmanager"
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

	log.Info("Starting HMS-ReservationService...")
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

	// Инициализируем клиента реестра гостей
	guestClient := guestRegistryClient.NewClient(
		cfg.GuestRegistry.URL,
		time.Duration(cfg.GuestRegistry.Timeout)*time.Second,
		log,
	)
	log.Info("GuestRegistry client initialized (url=%s, timeout=%ds)",
		cfg.GuestRegistry.URL, cfg.GuestRegistry.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository        *roomRepo.Repository
		reservationRepository *reservationRepo.Repository
		assignmentRepository  *assignmentRepo.Repository
		paymentRepository     *paymentRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(roomRepository, log)
	pricingSvc := pricingService.NewService(
		reservationRepository,
		assignmentRepository,
		paymentRepository,
		cfg.Booking.TaxRateBasisPoints,
		log,
	)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		assignmentRepository,
		txMgr,
		cfg.Booking.CancellationCutoffHours,
		log,
	)
	paymentSvc := paymentsService.NewService(reservationRepository, paymentRepository, log)

	// Инициализируем use cases
	findAvailableRoomsUseCase := findAvailableRoomsUC.NewUseCase(
		roomRepository,
		assignmentRepository,
		cfg.Booking.PendingBlocksAvailability,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		assignmentRepository,
		roomRepository,
		guestClient,
		txMgr,
		cfg.Booking.PendingBlocksAvailability,
		log,
	)
	confirmReservationUseCase := confirmReservationUC.NewUseCase(
		reservationRepository,
		assignmentRepository,
		roomRepository,
		txMgr,
		cfg.Booking.PendingBlocksAvailability,
		log,
	)
	checkInUseCase := checkInUC.NewUseCase(
		reservationRepository,
		assignmentRepository,
		roomRepository,
		txMgr,
		cfg.Booking.AllowEarlyCheckIn,
		log,
	)
	checkOutUseCase := checkOutUC.NewUseCase(
		reservationRepository,
		assignmentRepository,
		roomRepository,
		pricingSvc,
		txMgr,
		log,
	)
	projectCalendarUseCase := projectCalendarUC.NewUseCase(
		roomRepository,
		assignmentRepository,
		log,
	)

	// Инициализируем handlers
	findAvailableRooms := findAvailableRoomsHandler.NewHandler(findAvailableRoomsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(projectCalendarUseCase, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(roomSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getReservationPricing := getReservationPricingHandler.NewHandler(pricingSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(confirmReservationUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(paymentSvc, log)

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
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор доступных номеров
	api.HandleFunc("/available-rooms", findAvailableRooms.Handle).Methods(http.MethodGet)

	// Календарь занятости
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Карточка номера
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/pricing", getReservationPricing.Handle).Methods(http.MethodGet)

	// --- Жизненный цикл ---
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/check-in", checkIn.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/check-out", checkOut.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// --- Платежи ---
	protected.HandleFunc("/reservations/{reservationId}/payments", recordPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/payments", recordPayment.HandleList).Methods(http.MethodGet)

	// --- Номерной фонд ---
	protected.HandleFunc("/rooms/{roomId}/status", updateRoomStatus.Handle).Methods(http.MethodPatch)

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
