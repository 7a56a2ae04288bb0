package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/altera/config"
	"github.com/Domenick1991/altera/internal/cache"
	"github.com/Domenick1991/altera/internal/email"
	"github.com/Domenick1991/altera/internal/kafka"
	"github.com/Domenick1991/altera/internal/logger"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	flightsTTL := time.Duration(cfg.Booking.FlightsCacheTTL) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, flightsTTL)
	defer redisCache.Close()

	flightService := flights.NewFlightService(
		repository.NewFlightRepository(pool),
		repository.NewFareRepository(pool),
		redisCache,
		flightsTTL,
	)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Worker.CacheRefreshSchedule, func() {
		jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		n, err := flightService.RefreshCache(jobCtx)
		if err != nil {
			logrus.WithError(err).Warn("flights cache refresh failed")
			return
		}
		logrus.WithField("flights", n).Debug("flights cache refreshed")
	}); err != nil {
		logrus.Fatalf("schedule cache refresh %q: %v", cfg.Worker.CacheRefreshSchedule, err)
	}
	scheduler.Start()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(logrus.StandardLogger())

	go func() {
		if err := consumer.Consume(ctx, kafka.EventHandler(sender.Send)); err != nil && !errors.Is(err, context.Canceled) {
			logrus.WithError(err).Error("consumer stopped")
			stop()
		}
	}()

	logrus.WithField("topic", cfg.Kafka.NotificationsTopic).Info("worker started")
	<-ctx.Done()

	logrus.Info("shutting down worker")
	<-scheduler.Stop().Done()
}
