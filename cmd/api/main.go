// @title FytAI Health API
// @version 1.0
// @description Health questionnaire scoring and recommendation service.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fytai-health-api/internal/adapter"
	"fytai-health-api/internal/adapter/advisor"
	"fytai-health-api/internal/cache"
	"fytai-health-api/internal/config"
	"fytai-health-api/internal/database"
	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/handler"
	"fytai-health-api/internal/logger"
	"fytai-health-api/internal/middleware"
	"fytai-health-api/internal/repository"
	"fytai-health-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize Redis-backed result store. The questionnaire stays
	// usable without it, so a connection failure only degrades.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Failed to connect to Redis, result store will be no-op", zap.Error(err))
	} else {
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	}
	resultStore := service.NewResultStoreService(cacheAdapter, cfg.Results.TTL)

	// Connect to the archive database
	db, err := database.NewSQLXSQLiteDB(cfg.Archive.SQLitePath)
	if err != nil {
		appLogger.Fatal("Failed to open archive database", zap.Error(err))
	}
	resultArchive := repository.NewSQLXResultArchive(db, cfg.Archive.MaxPerUser)
	appLogger.Info("Result archive initialized", zap.String("path", cfg.Archive.SQLitePath))

	// Initialize the AI advisor. Chat degrades to 503 when unavailable.
	var healthAdvisor domain.HealthAdvisor
	healthAdvisor, err = advisor.NewOllamaAdvisor(cfg.Advisor)
	if err != nil {
		appLogger.Warn("Failed to create health advisor, chat will be unavailable", zap.Error(err))
		healthAdvisor = nil
	} else {
		appLogger.Info("Health advisor initialized",
			zap.String("server_url", cfg.Advisor.ServerURL),
			zap.String("model", cfg.Advisor.Model),
		)
	}

	// Initialize services
	scoreService := service.NewScoreService(domain.DefaultCatalog())
	assessmentService := service.NewAssessmentService(
		scoreService,
		resultStore,
		resultArchive,
		healthAdvisor,
		service.NewExerciseService(),
		service.NewPDFExportService(),
		cfg.Results.RecentAge,
	)
	appLogger.Info("AssessmentService initialized")

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(assessmentService)
	sessionMiddleware := middleware.NewSessionMiddleware()
	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,X-Session-ID", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api", sessionMiddleware.Handle())
	healthHandler.RegisterRoutes(apiGroup, validationMiddleware)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		appLogger.Warn("Failed to close archive database", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
