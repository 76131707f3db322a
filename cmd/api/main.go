package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetmind-team/meetmind-backend/pkg/validator"

	"github.com/meetmind-team/meetmind-backend/internal/adapter/handler"
	"github.com/meetmind-team/meetmind-backend/internal/adapter/repository"
	"github.com/meetmind-team/meetmind-backend/internal/infrastructure/database"
	"github.com/meetmind-team/meetmind-backend/internal/infrastructure/external/automation"
	"github.com/meetmind-team/meetmind-backend/internal/usecase/reminder"
	"github.com/meetmind-team/meetmind-backend/internal/usecase/transcription"
	pkgai "github.com/meetmind-team/meetmind-backend/pkg/ai"
	"github.com/meetmind-team/meetmind-backend/pkg/config"
)

func main() {
	// Load configuration. Missing required values are fatal: the process
	// refuses to start rather than degrading.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config. Production
	// deployments manage schema through sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("Applying migrations (development only)...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize repositories
	pendingRepo := repository.NewPendingMeetingRepository(db)
	completedRepo := repository.NewCompletedMeetingRepository(db)

	// Initialize external clients. These are process-wide singletons,
	// constructed once and injected into each service.
	log.Println("Initializing engine clients...")
	whisperClient := pkgai.NewWhisperClient(&cfg.Whisper)
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	automationClient := automation.NewClient(&cfg.Automation)

	// Initialize services
	reminderService := reminder.NewService(pendingRepo, automationClient, logger)
	transcriptionService := transcription.NewService(completedRepo, whisperClient, geminiClient, cfg.Server.TempDir, logger)

	// Initialize handlers and routes
	reminderHandler := handler.NewReminderHandler(reminderService, logger)
	meetingHandler := handler.NewMeetingHandler(transcriptionService, logger)

	router := handler.NewRouter(cfg, reminderHandler, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s (environment: %s)", addr, cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
