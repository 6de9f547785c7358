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

	pkgvalidator "github.com/truthos/meeting-intelligence/pkg/validator"

	"github.com/truthos/meeting-intelligence/internal/adapter/handler"
	"github.com/truthos/meeting-intelligence/internal/adapter/repository"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
	"github.com/truthos/meeting-intelligence/internal/infrastructure/cache"
	"github.com/truthos/meeting-intelligence/internal/infrastructure/database"
	"github.com/truthos/meeting-intelligence/internal/usecase/analysis"
	"github.com/truthos/meeting-intelligence/internal/usecase/contact"
	"github.com/truthos/meeting-intelligence/internal/usecase/ingest"
	"github.com/truthos/meeting-intelligence/pkg/config"
	"github.com/truthos/meeting-intelligence/pkg/llm"
)

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
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-User-Role", "X-User-Id", "X-Request-ID"},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply schema migrations only when explicitly enabled in config.
	// Production deployments manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping startup migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	truthRepo := repository.NewTruthRepository(db)

	var derivedRepo repositories.DerivedRepository = repository.NewDerivedRepository(db)

	// Redis read-through cache over the derived store. Rows are immutable,
	// so cached entries never need invalidation.
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		derivedRepo = cache.NewCachedDerivedRepository(derivedRepo, redisClient, cfg.Redis.TTL, logger)
	}

	// Initialize analysis components
	log.Println("🤖 Initializing analysis components...")
	llmClient := llm.NewClient(cfg)
	log.Printf("✅ LLM provider: %s (model %s)", llmClient.Provider(), llmClient.Model())
	agent := analysis.NewAgent(llmClient, logger)
	derivedStore := analysis.NewDerivedStore(derivedRepo)

	// Initialize services
	log.Println("✨ Initializing services...")
	ingestService := ingest.NewService(truthRepo, logger)
	analysisService := analysis.NewService(truthRepo, derivedStore, agent, cfg, logger)
	contactService := contact.NewService(truthRepo, derivedRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeeting(ingestService, logger)
	analysisHandler := handler.NewAnalysis(analysisService, logger)
	contactHandler := handler.NewContact(contactService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, analysisHandler, contactHandler)
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
		log.Fatalf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("✅ Server stopped")
}
