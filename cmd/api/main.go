package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"social-account/internal/cache"
	"social-account/internal/config"
	"social-account/internal/handler"
	"social-account/internal/middleware"
	"social-account/internal/pkg/i18n"
	"social-account/internal/queue"
	"social-account/internal/repository"
	"social-account/internal/service"
	"social-account/internal/service/auth"
	"social-account/internal/service/email"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := i18n.LoadTranslations(cfg.LocalePath); err != nil {
		log.Warn("Failed to load translations", "path", cfg.LocalePath, "error", err)
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		fatal(log, "Failed to connect to database", err)
	}
	defer db.Close()

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		fatal(log, "Failed to connect to Redis", err)
	}
	defer rdb.Close()

	amqpConn, err := config.NewAMQPConnection(cfg)
	if err != nil {
		fatal(log, "Failed to connect to RabbitMQ", err)
	}
	defer amqpConn.Close()

	ch, err := amqpConn.Channel()
	if err != nil {
		fatal(log, "Failed to open a channel", err)
	}
	defer ch.Close()

	publisher, err := queue.NewPublisher(ch, cfg.FollowPipelineQueue)
	if err != nil {
		fatal(log, "Failed to set up publisher", err)
	}

	emailService, err := email.NewService(cfg)
	if err != nil {
		fatal(log, "Failed to set up mailer", err)
	}

	feed := cache.NewFeedCache(rdb, cfg.CachePrefix, cfg.FeedCacheSize, cfg.NotificationCacheTTL)
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, feed, publisher, emailService, cfg, log)
	handlers := handler.NewHandlers(services, log)

	app := fiber.New(fiber.Config{
		ErrorHandler:      middleware.ErrorHandler,
		EnablePrintRoutes: cfg.PrintRoutes,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.Locale())

	setupRoutes(app, handlers, services.Auth)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("Server shutdown failed", "error", err)
		}
	}()

	log.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "Failed to start server", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	account := v1.Group("/account", middleware.AuthRequired(authService))
	h.RegisterAccountRoutes(account)
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
