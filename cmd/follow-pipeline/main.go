package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"social-account/internal/cache"
	"social-account/internal/config"
	"social-account/internal/pipeline"
	"social-account/internal/queue"
	"social-account/internal/repository"
	"social-account/internal/service/notification"
)

const prefetch = 16

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

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

	consumer, err := queue.NewConsumer(ch, cfg.FollowPipelineQueue, prefetch, log)
	if err != nil {
		fatal(log, "Failed to set up consumer", err)
	}

	repos := repository.NewRepositories(db)
	feed := cache.NewFeedCache(rdb, cfg.CachePrefix, cfg.FeedCacheSize, cfg.NotificationCacheTTL)
	notifications := notification.NewService(repos.Notification, repos.Follower, feed, log)
	follows := pipeline.NewFollowHandler(repos.Follower, notifications, rdb, cfg.CachePrefix, cfg.NotificationCacheTTL, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Follow pipeline started", "queue", cfg.FollowPipelineQueue)
	if err := consumer.Run(ctx, follows.Handle); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Consumer stopped", "error", err)
		os.Exit(1)
	}
	log.Info("Follow pipeline stopped")
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
