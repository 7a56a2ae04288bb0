package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/altera/api"
	"github.com/Domenick1991/altera/config"
	"github.com/Domenick1991/altera/internal/bootstrap"
	"github.com/Domenick1991/altera/internal/cache"
	"github.com/Domenick1991/altera/internal/hotels"
	"github.com/Domenick1991/altera/internal/kafka"
	"github.com/Domenick1991/altera/internal/logger"
	"github.com/Domenick1991/altera/internal/middleware"
	"github.com/Domenick1991/altera/internal/payment"
	"github.com/Domenick1991/altera/internal/recommend"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/service/checkout"
	"github.com/Domenick1991/altera/internal/service/flights"
	"github.com/Domenick1991/altera/internal/service/meals"
	"github.com/Domenick1991/altera/internal/service/quote"
	"github.com/Domenick1991/altera/internal/service/reservation"
	"github.com/Domenick1991/altera/internal/service/social"
	"github.com/Domenick1991/altera/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
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

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		logrus.WithError(err).Warn("kafka is unreachable, reservation events will be dropped")
	}

	flightRepo := repository.NewFlightRepository(pool)
	fareRepo := repository.NewFareRepository(pool)
	offeringRepo := repository.NewOfferingRepository(pool)
	mealRepo := repository.NewMealRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	followRepo := repository.NewFollowRepository(pool)
	postRepo := repository.NewPostRepository(pool)

	flightService := flights.NewFlightService(flightRepo, fareRepo, redisCache, flightsTTL)
	offeringService := flights.NewOfferingService(offeringRepo)
	mealService := meals.NewMealService(mealRepo)
	quoteService := quote.NewQuoteService(fareRepo, mealRepo)
	reservationService := reservation.NewReservationService(
		reservationRepo,
		userRepo,
		quoteService,
		producer,
		cfg.Kafka.ReservationTopic,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		reservation.WithInventory(cfg.Booking.EnforceInventory),
	)
	checkoutService := checkout.NewCheckoutService(
		reservationService,
		flightRepo,
		payment.NewStripeClient(cfg.Payment),
		redisCache,
		payment.NewWebhookVerifier(cfg.Payment.WebhookSecret, time.Duration(cfg.Payment.WebhookTolerance)*time.Second),
		time.Duration(cfg.Booking.CheckoutLockTTL)*time.Second,
	)
	userService := users.NewUserService(userRepo)
	socialService := social.NewSocialService(followRepo, postRepo)

	if cfg.Auth.JWTSecret == "" {
		logrus.Warn("auth.jwt_secret is empty, admin routes will reject every request")
	}

	router := api.NewRouter(
		api.RouterConfig{
			Auth:       middleware.NewAuthenticator(cfg.Auth.JWTSecret),
			SwaggerDir: cfg.HTTP.SwaggerDir,
			Logger:     logrus.StandardLogger(),
			Health: map[string]api.HealthCheck{
				"postgres": pool.Ping,
				"redis":    redisCache.Ping,
			},
		},
		api.NewFlightHandler(flightService, offeringService),
		api.NewFareHandler(quoteService),
		api.NewMealHandler(mealService),
		api.NewReservationHandler(reservationService),
		api.NewCheckoutHandler(checkoutService),
		api.NewUserHandler(userService),
		api.NewSocialHandler(socialService),
		api.NewExternalHandler(hotels.NewAmadeusClient(cfg.Hotels), recommend.NewClient(cfg.Recommendations)),
	)

	servers := bootstrap.NewServers(cfg, router, quoteService)
	if err := servers.Run(ctx, cfg.GRPC.Address); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
