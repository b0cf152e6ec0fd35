package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	httpapi "equiprent-backend/internal/api/http"
	"equiprent-backend/internal/config"
	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/jobs"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/payment"
	"equiprent-backend/internal/repository/boltdb"
	"equiprent-backend/internal/repository/jsonfile"
	"equiprent-backend/internal/scheduler"
	"equiprent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EquipRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Catalog configuration", "path", cfg.Catalog.Path)
	logger.Info("Reviews configuration", "db_path", cfg.Reviews.DBPath)

	// Initialize equipment catalog. A failed load is not fatal: the store
	// degrades to an empty catalog and the reload job retries later.
	equipmentStore := jsonfile.NewEquipmentStore(cfg.Catalog.Path)
	if err := equipmentStore.Reload(context.Background()); err != nil {
		logger.Error("Failed to load equipment catalog, starting with empty catalog", "error", err)
	} else {
		items, _ := equipmentStore.All(context.Background())
		logger.Info("Equipment catalog loaded", "items", len(items))
	}

	// Initialize review store
	reviewStore, err := boltdb.NewReviewStore(cfg.Reviews.DBPath)
	if err != nil {
		logger.Error("Failed to open reviews database", "error", err)
		log.Fatalf("Failed to open reviews database: %v", err)
	}
	defer reviewStore.Close()

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize the payment machine. Confirmation emails are best-effort.
	machine := payment.NewMachine(
		time.Duration(cfg.Payment.ProcessingDelayMillis)*time.Millisecond,
		payment.WithConfirmedHook(func(tx domain.Transaction, conf domain.BookingConfirmation) {
			logger.Info("Booking confirmed",
				"payment_id", conf.PaymentID,
				"item", conf.ItemTitle,
				"duration_days", conf.DurationDays,
				"total_paise", conf.TotalAmountPaise,
			)
			if err := emailSvc.SendBookingConfirmation(
				context.Background(),
				tx.Email, tx.CustomerName, conf.ItemTitle,
				conf.DurationDays, conf.TotalAmountPaise, conf.PaymentID,
			); err != nil {
				logger.Error("Failed to send booking confirmation email", "error", err)
			}
		}),
	)

	// Initialize Services
	catalogSvc := service.NewCatalogService(equipmentStore)
	bookingSvc := service.NewBookingService(equipmentStore, machine)
	feedbackSvc := service.NewFeedbackService(reviewStore)

	// Start the catalog reload scheduler
	jobRunner := jobs.NewJobRunner(equipmentStore, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, catalogSvc, bookingSvc, feedbackSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
