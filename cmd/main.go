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

	cancelReservationHandler "github.com/golab368/REPL-backend-tenis/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/golab368/REPL-backend-tenis/internal/api/handlers/create_reservation"
	exportScheduleHandler "github.com/golab368/REPL-backend-tenis/internal/api/handlers/export_schedule"
	getNearestSlotHandler "github.com/golab368/REPL-backend-tenis/internal/api/handlers/get_nearest_slot"
	getScheduleHandler "github.com/golab368/REPL-backend-tenis/internal/api/handlers/get_schedule"
	getUserReservationsHandler "github.com/golab368/REPL-backend-tenis/internal/api/handlers/get_user_reservations"
	"github.com/golab368/REPL-backend-tenis/internal/api/middleware"
	"github.com/golab368/REPL-backend-tenis/internal/config"
	"github.com/golab368/REPL-backend-tenis/internal/infra/storage/migrations"
	reservationRepo "github.com/golab368/REPL-backend-tenis/internal/infra/storage/reservation"
	reservationsService "github.com/golab368/REPL-backend-tenis/internal/service/reservations"
	createReservationUC "github.com/golab368/REPL-backend-tenis/internal/usecase/create_reservation"
	findNearestSlotUC "github.com/golab368/REPL-backend-tenis/internal/usecase/find_nearest_slot"
	"github.com/golab368/REPL-backend-tenis/pkg/dbmetrics"
	"github.com/golab368/REPL-backend-tenis/pkg/logger"
	"github.com/golab368/REPL-backend-tenis/pkg/metrics"
	"github.com/golab368/REPL-backend-tenis/pkg/simpletxmanager"
	"github.com/golab368/REPL-backend-tenis/pkg/txmanager"
)

// TxManager интерфейс transaction manager (используется в usecases и сервисах)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting court reservation service...")
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

	// Накатываем миграции (если включено)
	if cfg.Database.Migrate {
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrations.Version(context.Background(), db)
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version=%d", version)
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		repository *reservationRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	findNearestSlotUseCase := findNearestSlotUC.NewUseCase(repository, log)

	createReservationUseCase := createReservationUC.NewUseCase(
		repository,
		findNearestSlotUseCase,
		txMgr,
		log,
	)

	// Инициализируем сервис броней
	reservationsSvc := reservationsService.NewService(repository, txMgr, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getNearestSlot := getNearestSlotHandler.NewHandler(findNearestSlotUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(reservationsSvc, log)
	exportSchedule := exportScheduleHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Создание брони
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена брони по порядковому номеру в списке имени
	api.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Ближайший свободный слот
	api.HandleFunc("/available-slot", getNearestSlot.Handle).Methods(http.MethodGet)

	// Брони одного имени
	api.HandleFunc("/users/{name}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Расписание корта
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/export", exportSchedule.Handle).Methods(http.MethodGet)

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
