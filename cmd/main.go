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

	acceptMissionHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/accept_mission"
	cancelMissionHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/cancel_mission"
	checkTimeSlotHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/check_time_slot"
	createCollectiveSlotHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/create_collective_slot"
	deleteAvailabilityHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/delete_availability"
	getAvailabilityHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_availability"
	getCalendarHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_calendar"
	getCategoryConfigHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_category_config"
	getClientMissionsHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_client_missions"
	getCollectiveSlotHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_collective_slot"
	getCollectiveSlotsHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_collective_slots"
	getDayStatusHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_day_status"
	getMissionHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_mission"
	getProviderMissionsHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_provider_missions"
	getRemainingCapacityHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/get_remaining_capacity"
	requestMissionHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/request_mission"
	setAvailabilityHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/set_availability"
	updateCategoryConfigHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/update_category_config"
	updateMissionStatusHandler "github.com/pawfinder/PF-SchedulingService/internal/api/handlers/update_mission_status"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	"github.com/pawfinder/PF-SchedulingService/internal/config"
	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	slotRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/collectiveslot"
	missionRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/mission"
	notifierClient "github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	paymentsClient "github.com/pawfinder/PF-SchedulingService/internal/integrations/payments"
	availabilityService "github.com/pawfinder/PF-SchedulingService/internal/service/availability"
	configService "github.com/pawfinder/PF-SchedulingService/internal/service/categoryconfig"
	missionsService "github.com/pawfinder/PF-SchedulingService/internal/service/missions"
	slotsService "github.com/pawfinder/PF-SchedulingService/internal/service/slots"
	acceptMissionUC "github.com/pawfinder/PF-SchedulingService/internal/usecase/accept_mission"
	cancelMissionUC "github.com/pawfinder/PF-SchedulingService/internal/usecase/cancel_mission"
	checkTimeSlotUC "github.com/pawfinder/PF-SchedulingService/internal/usecase/check_time_slot"
	getCalendarUC "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_calendar"
	getDayStatusUC "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_day_status"
	getRemainingCapacityUC "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_remaining_capacity"
	requestBookingUC "github.com/pawfinder/PF-SchedulingService/internal/usecase/request_booking"
	"github.com/pawfinder/PF-SchedulingService/pkg/dbmetrics"
	"github.com/pawfinder/PF-SchedulingService/pkg/logger"
	"github.com/pawfinder/PF-SchedulingService/pkg/metrics"
	"github.com/pawfinder/PF-SchedulingService/pkg/simpletxmanager"
	"github.com/pawfinder/PF-SchedulingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PF-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Notifier=%s timeout=%ds, Payments=%s timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Timeout, cfg.Payments.URL, cfg.Payments.Timeout)

	var (
		availabilityRepository *availabilityRepo.Repository
		missionRepository      *missionRepo.Repository
		slotRepository         *slotRepo.Repository
		configRepository       *configRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		missionRepository = missionRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		missionRepository = missionRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	commission := domain.PercentCommission{RateBasisPoints: cfg.Pricing.CommissionBasisPoints}
	refundPolicy := domain.NoticeRefundPolicy{
		FullRefundNotice: time.Duration(cfg.Pricing.FullRefundNoticeHours) * time.Hour,
	}

	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	slotsSvc := slotsService.NewService(slotRepository, log)
	configSvc := configService.NewService(configRepository, log)
	missionsSvc := missionsService.NewService(
		missionRepository,
		slotRepository,
		notifier,
		txMgr,
		log,
	)

	requestBookingUseCase := requestBookingUC.NewUseCase(
		availabilityRepository,
		missionRepository,
		slotRepository,
		configRepository,
		notifier,
		txMgr,
		commission,
		log,
	)
	acceptMissionUseCase := acceptMissionUC.NewUseCase(
		missionRepository,
		availabilityRepository,
		configRepository,
		payments,
		notifier,
		txMgr,
		log,
	)
	cancelMissionUseCase := cancelMissionUC.NewUseCase(
		missionRepository,
		slotRepository,
		payments,
		notifier,
		txMgr,
		refundPolicy,
		log,
	)
	getDayStatusUseCase := getDayStatusUC.NewUseCase(
		availabilityRepository,
		missionRepository,
		configRepository,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		availabilityRepository,
		missionRepository,
		configRepository,
		log,
	)
	checkTimeSlotUseCase := checkTimeSlotUC.NewUseCase(
		missionRepository,
		configRepository,
		log,
	)
	getRemainingCapacityUseCase := getRemainingCapacityUC.NewUseCase(
		availabilityRepository,
		missionRepository,
		configRepository,
		log,
	)

	requestMission := requestMissionHandler.NewHandler(requestBookingUseCase, log)
	acceptMission := acceptMissionHandler.NewHandler(acceptMissionUseCase, log)
	cancelMission := cancelMissionHandler.NewHandler(cancelMissionUseCase, log)
	updateMissionStatus := updateMissionStatusHandler.NewHandler(missionsSvc, log)
	getMission := getMissionHandler.NewHandler(missionsSvc, log)
	getProviderMissions := getProviderMissionsHandler.NewHandler(missionsSvc, log)
	getClientMissions := getClientMissionsHandler.NewHandler(missionsSvc, log)
	getDayStatus := getDayStatusHandler.NewHandler(getDayStatusUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	checkTimeSlot := checkTimeSlotHandler.NewHandler(checkTimeSlotUseCase, log)
	getRemainingCapacity := getRemainingCapacityHandler.NewHandler(getRemainingCapacityUseCase, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	createCollectiveSlot := createCollectiveSlotHandler.NewHandler(slotsSvc, log)
	getCollectiveSlots := getCollectiveSlotsHandler.NewHandler(slotsSvc, log)
	getCollectiveSlot := getCollectiveSlotHandler.NewHandler(slotsSvc, log)
	getCategoryConfig := getCategoryConfigHandler.NewHandler(configSvc, log)
	updateCategoryConfig := updateCategoryConfigHandler.NewHandler(configSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: schedule reads and category configs.
	api.HandleFunc("/providers/{providerId}/schedule/day",
		getDayStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/schedule/calendar",
		getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/schedule/slot",
		checkTimeSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/schedule/capacity",
		getRemainingCapacity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/slots",
		getCollectiveSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/slots/{slotId}",
		getCollectiveSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories/configs",
		getCategoryConfig.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/categories/{slug}/config",
		getCategoryConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories/{slug}/config",
		updateCategoryConfig.Handle).Methods(http.MethodPut)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/missions", requestMission.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/missions", getClientMissions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/missions/{missionId}", getMission.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/missions/{missionId}/accept", acceptMission.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/missions/{missionId}/cancel", cancelMission.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/missions/{missionId}/{action}", updateMissionStatus.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/providers/{providerId}/missions", getProviderMissions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/availability", setAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/providers/{providerId}/availability/{date}", deleteAvailability.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/providers/{providerId}/slots", createCollectiveSlot.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
