package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/get_appointment"
	getBarberScheduleHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/get_barber_schedule"
	getDayAgendaHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/get_day_agenda"
	getDayAppointmentsHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/get_day_appointments"
	updateBarberScheduleHandler "github.com/m04kA/SMC-BarberAgenda/internal/api/handlers/update_barber_schedule"
	"github.com/m04kA/SMC-BarberAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-BarberAgenda/internal/config"
	appointmentCache "github.com/m04kA/SMC-BarberAgenda/internal/infra/cache/appointments"
	appointmentRepo "github.com/m04kA/SMC-BarberAgenda/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-BarberAgenda/internal/infra/storage/barber"
	appointmentsService "github.com/m04kA/SMC-BarberAgenda/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-BarberAgenda/internal/service/schedule"
	checkAvailabilityUC "github.com/m04kA/SMC-BarberAgenda/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/SMC-BarberAgenda/internal/usecase/create_appointment"
	getDayAgendaUC "github.com/m04kA/SMC-BarberAgenda/internal/usecase/get_day_agenda"
	"github.com/m04kA/SMC-BarberAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberAgenda/pkg/logger"
	"github.com/m04kA/SMC-BarberAgenda/pkg/metrics"
	"github.com/m04kA/SMC-BarberAgenda/pkg/txmanager"
)

func main() {
	// Секреты могут приходить из .env, файл необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

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

	log.Info("Starting SMC-BarberAgenda...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс и окна работы салона
	location, err := cfg.Shop.Location()
	if err != nil {
		log.Fatal("Invalid shop timezone: %v", err)
	}
	shopHours, err := cfg.Shop.ShopHours()
	if err != nil {
		log.Fatal("Invalid shop hours: %v", err)
	}

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Подключаемся к Redis. Недоступный Redis не мешает старту: записи читаются из БД
	var cache appointmentsService.AppointmentCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()

		if err != nil {
			log.Warn("Redis is unavailable, day snapshot cache disabled: addr=%s, error=%v", cfg.Redis.Address, err)
		} else {
			cache = appointmentCache.NewCache(redisClient, cfg.Cache.SnapshotTTLDuration())
			log.Info("Day snapshot cache enabled (addr=%s, ttl=%s)", cfg.Redis.Address, cfg.Cache.SnapshotTTLDuration())
		}
	}

	// Инициализируем репозитории
	barberRepository := barberRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB, log)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		cache,
		txMgr,
		metricsCollector,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		barberRepository,
		log,
	)

	// Инициализируем use cases
	getDayAgendaUseCase := getDayAgendaUC.NewUseCase(
		barberRepository,
		appointmentsSvc,
		shopHours,
		location,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		barberRepository,
		appointmentsSvc,
		shopHours,
		location,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		barberRepository,
		appointmentRepository,
		appointmentsSvc,
		txMgr,
		shopHours,
		location,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getDayAgenda := getDayAgendaHandler.NewHandler(getDayAgendaUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBarberSchedule := getBarberScheduleHandler.NewHandler(scheduleSvc, log)
	updateBarberSchedule := updateBarberScheduleHandler.NewHandler(scheduleSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getDayAppointments := getDayAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.Server.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, log)
		api.Use(limiter.Middleware())
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Агенда дня: слоты x барберы
	api.HandleFunc("/agenda", getDayAgenda.Handle).Methods(http.MethodGet)

	// Вердикт по одному слоту барбера
	api.HandleFunc("/barbers/{barberId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Действующее расписание барбера
	api.HandleFunc("/barbers/{barberId}/schedule", getBarberSchedule.Handle).Methods(http.MethodGet)

	// Записи дня и запись по ID
	api.HandleFunc("/appointments", getDayAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	protected.HandleFunc("/barbers/{barberId}/schedule", updateBarberSchedule.Handle).Methods(http.MethodPut)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
