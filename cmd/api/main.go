package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"daily-quiz/internal/adapter"
	"daily-quiz/internal/cache"
	"daily-quiz/internal/config"
	"daily-quiz/internal/database"
	"daily-quiz/internal/handler"
	"daily-quiz/internal/logger"
	"daily-quiz/internal/middleware"
	"daily-quiz/internal/repository"
	"daily-quiz/internal/service"
	"daily-quiz/internal/validation"

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

		// Process request
		err := c.Next()

		// Log request details
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

	// Open the local state database and apply migrations
	db, err := database.NewSQLXSQLiteDB(cfg.Database.Path)
	if err != nil {
		appLogger.Fatal("Failed to open state database", zap.Error(err))
	}
	if err := database.RunMigrations(db, "file://migrations"); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	appLogger.Info("State database ready", zap.String("path", cfg.Database.Path))

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize repositories
	questionSource := repository.NewRedisQuestionSource(cacheAdapter)
	stateStore := repository.NewSQLXStateStore(db)
	progressStore := repository.NewStateProgressStore(stateStore)

	// Initialize services
	sessionStore := service.NewCacheSessionStore(cacheAdapter, cfg.Session.TTL)
	progressService := service.NewProgressService(progressStore)
	sessionService := service.NewSessionService(questionSource, sessionStore, progressService)
	appLogger.Info("Services initialized")

	// Initialize handlers
	validator := validation.NewValidator()
	sessionHandler := handler.NewSessionHandler(sessionService, validator)
	progressHandler := handler.NewProgressHandler(progressService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Session routes
	sessionGroup := apiGroup.Group("/sessions")
	sessionGroup.Post("/", sessionHandler.StartSession)
	sessionGroup.Get("/:id", sessionHandler.GetSession)
	sessionGroup.Post("/:id/submit", sessionHandler.Submit)
	sessionGroup.Post("/:id/advance", sessionHandler.Advance)
	sessionGroup.Post("/:id/hint", sessionHandler.RevealHint)

	// Progress routes
	apiGroup.Get("/progress", progressHandler.GetProgress)

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
		appLogger.Error("Failed to close state database", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
