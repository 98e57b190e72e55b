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

	pkgvalidator "github.com/meeting-summarizer-team/meeting-summarizer/pkg/validator"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/handler"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/repository"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/repositories"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/infrastructure/database"
	httpmw "github.com/meeting-summarizer-team/meeting-summarizer/internal/infrastructure/http/middleware"
	analysisuse "github.com/meeting-summarizer-team/meeting-summarizer/internal/usecase/analysis"
	pkgai "github.com/meeting-summarizer-team/meeting-summarizer/pkg/ai"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/jwt"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/slack"
)

// @title           Meeting Summarizer API
// @version         1.0
// @description     API for AI meeting transcript summarization with Slack export

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
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
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database. A missing or unreachable database disables
	// persistence only; processing and export still work.
	log.Println("📦 Connecting to database...")
	var analysisRepo repositories.AnalysisRepository
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Warn("database unavailable, persistence disabled", zap.Error(err))
	} else {
		defer database.CloseDB(db)

		// Run migrations only when explicitly enabled in config.
		// Production deployments should manage schema via sql-migrate directly.
		if cfg.Database.AutoMigrate {
			if cfg.Server.Environment == "production" {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
			}
			log.Println("🔄 Running migrations (development only) ...")
			if err := database.Migrate(db); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		} else {
			log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
		}

		analysisRepo = repository.NewAnalysisRepository(db)
	}

	// Initialize AI client
	log.Println("🤖 Initializing Gemini client...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	if !geminiClient.Enabled() {
		logger.Warn("GEMINI_API_KEY not set, transcript analysis disabled")
	}

	// Initialize Slack webhook client
	log.Println("🪝 Initializing Slack webhook client...")
	slackClient := slack.NewClient(&cfg.Slack)
	if !slackClient.Enabled() {
		logger.Warn("SLACK_WEBHOOK_URL not set, Slack export disabled")
	}

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Initialize analysis service
	log.Println("✨ Initializing analysis service...")
	analysisService := analysisuse.NewService(analysisRepo, geminiClient, slackClient, logger)
	analysisController := handler.NewAnalysisController(analysisService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(jwtManager)
	router := handler.NewRouter(cfg, analysisController, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
