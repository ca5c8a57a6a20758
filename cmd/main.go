package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookAppointmentHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/cancel_appointment"
	getAvailabilityHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/get_availability"
	getCarerBookingsHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/get_carer_bookings"
	getCatalogueHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/get_catalogue"
	getPersonBookingsHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/get_person_bookings"
	getSlotHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/get_slot"
	healthHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/health"
	initializeCatalogueHandler "github.com/m04kA/SMC-CareSlotService/internal/api/handlers/initialize_catalogue"
	"github.com/m04kA/SMC-CareSlotService/internal/api/middleware"
	"github.com/m04kA/SMC-CareSlotService/internal/config"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/instrumented"
	slotsService "github.com/m04kA/SMC-CareSlotService/internal/service/slots"
	bookAppointmentUC "github.com/m04kA/SMC-CareSlotService/internal/usecase/book_appointment"
	getAvailabilityUC "github.com/m04kA/SMC-CareSlotService/internal/usecase/get_availability"
	initializeCatalogueUC "github.com/m04kA/SMC-CareSlotService/internal/usecase/initialize_catalogue"
	"github.com/m04kA/SMC-CareSlotService/pkg/logger"
	"github.com/m04kA/SMC-CareSlotService/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-CareSlotService...")
	log.Info("Configuration loaded from %s (store=%s)", *configPath, cfg.Store.Driver)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Slot store
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	store, closeStore, err := openStore(startupCtx, cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to open slot store: %v", err)
	}
	defer closeStore()

	if cfg.Metrics.Enabled {
		store = instrumented.New(store, metricsCollector, cfg.Store.Driver)
	}

	// Services and use cases
	slotSvc := slotsService.NewService(store, metricsCollector, log)

	initializeUseCase := initializeCatalogueUC.NewUseCase(
		store,
		cfg.Catalogue.ToSpec(),
		cfg.Catalogue.Concurrency,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(store, log)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(store, metricsCollector, log)

	if cfg.Store.SeedOnStart {
		result, err := initializeUseCase.Execute(startupCtx)
		if err != nil {
			log.Fatal("Failed to seed slot catalogue: %v", err)
		}
		log.Info("Slot catalogue seeded: total=%d, created=%d, existing=%d",
			result.Total, result.Created, result.Existing)
	}

	// Handlers
	initializeCatalogue := initializeCatalogueHandler.NewHandler(initializeUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(slotSvc, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	getCarerBookings := getCarerBookingsHandler.NewHandler(slotSvc, log)
	getPersonBookings := getPersonBookingsHandler.NewHandler(slotSvc, log)
	getCatalogue := getCatalogueHandler.NewHandler(initializeUseCase, log)
	health := healthHandler.NewHandler(store, cfg.Store.Driver, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalogue
	api.HandleFunc("/initialize", initializeCatalogue.Handle).Methods(http.MethodPost)
	api.HandleFunc("/catalogue", getCatalogue.Handle).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/carers/{carerId}/slots/{date}/{timeSlot}", getSlot.Handle).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Bookings
	api.HandleFunc("/carers/{carerId}/bookings", getCarerBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", getPersonBookings.Handle).Methods(http.MethodGet)

	handler := gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(false))(r)
	handler = gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
