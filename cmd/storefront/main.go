package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/luisferxd1/nexxo-business-sub001/internal/cache"
	"github.com/luisferxd1/nexxo-business-sub001/internal/cart"
	"github.com/luisferxd1/nexxo-business-sub001/internal/catalog"
	"github.com/luisferxd1/nexxo-business-sub001/internal/config"
	httpapi "github.com/luisferxd1/nexxo-business-sub001/internal/http"
	"github.com/luisferxd1/nexxo-business-sub001/internal/order"
	"github.com/luisferxd1/nexxo-business-sub001/internal/publisher"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

func main() {
	cfg := config.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	ctx := context.Background()

	// Remote document store
	mongoClient, mongoDB, err := repository.Connect(ctx, repository.MongoSettings{
		URI:                    cfg.MongoURI,
		Database:               cfg.MongoDBName,
		ConnectTimeout:         cfg.MongoConnectTimeout,
		ServerSelectionTimeout: cfg.MongoSelectionTimeout,
		MaxPoolSize:            cfg.MongoMaxPoolSize,
		MinPoolSize:            cfg.MongoMinPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()
	log.Info().Str("uri", cfg.MongoURI).Msg("connected to MongoDB")

	productRepo := repository.NewMongoProductRepository(mongoDB)
	categoryRepo := repository.NewMongoCategoryRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	notificationRepo := repository.NewMongoNotificationRepository(mongoDB)

	ensureIndexes(ctx, log, productRepo, userRepo, orderRepo, notificationRepo)

	// Redis cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	catalogCache := cache.NewRedisCache(redisClient)

	// Kafka order events
	events := publisher.NewKafkaPublisher(cfg.KafkaBrokers...)
	defer events.Close()

	// Services
	sessions := cart.NewManager()
	catalogService := catalog.NewService(productRepo, categoryRepo, userRepo, catalogCache, log)
	orderService := order.NewService(orderRepo, notificationRepo, userRepo, events, log)

	// HTTP surface
	router := httpapi.NewRouter(
		httpapi.RouterConfig{RequestTimeout: cfg.RequestTimeout, Logger: log},
		httpapi.NewCartHandler(sessions, catalogService, cfg.RequestTimeout),
		httpapi.NewCatalogHandler(catalogService, cfg.RequestTimeout),
		httpapi.NewCheckoutHandler(orderService, userRepo, sessions, cfg.RequestTimeout),
		httpapi.NewNotificationHandler(notificationRepo, cfg.RequestTimeout),
	)

	srv := &nethttp.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("storefront stopped")
}

type indexCreator interface {
	CreateIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, log zerolog.Logger, repos ...interface{}) {
	for _, repo := range repos {
		if creator, ok := repo.(indexCreator); ok {
			if err := creator.CreateIndexes(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to create indexes")
			}
		}
	}
}
