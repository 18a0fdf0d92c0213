package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/sneakstreet/storefront/docs"
	"github.com/sneakstreet/storefront/internal/api"
	"github.com/sneakstreet/storefront/internal/api/middleware"
	"github.com/sneakstreet/storefront/internal/core/service"
	"github.com/sneakstreet/storefront/internal/infrastructure/config"
	"github.com/sneakstreet/storefront/internal/infrastructure/db/mongo"
	"github.com/sneakstreet/storefront/internal/infrastructure/db/redis"
	"github.com/sneakstreet/storefront/internal/infrastructure/http/handlers"
	"github.com/sneakstreet/storefront/internal/infrastructure/queue"
	"github.com/sneakstreet/storefront/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config.LoadDotEnv()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "storefront",
	})

	proxies, err := cfg.ProxyNetworks()
	if err != nil {
		return err
	}

	sessions, err := service.NewSessionService(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return err
	}

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
		Timeout:     cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	orderRepo := mongo.NewOrderRepository(db)
	for name, err := range mongo.EnsureIndexes(ctx, map[string]mongo.IndexEnsurer{
		"users":    userRepo,
		"products": productRepo,
		"orders":   orderRepo,
	}) {
		log.Warn().Err(err).Str("collection", name).Msg("index creation failed")
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	orders := queue.NewDispatcher(cfg.Orders.Workers, service.NewOrderService(orderRepo, logger.For("orders")), logger.For("dispatcher"))
	orders.Start(workerCtx)

	e := api.NewRouter(api.Deps{
		Log:      logger.For("http"),
		Auth:     service.NewAuthService(userRepo, sessions, logger.For("auth")),
		Sessions: sessions,
		Cookie: middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure || cfg.IsProduction(),
			TTL:    sessions.TTL(),
		},
		Products: service.NewProductService(productRepo, logger.For("catalog")),
		Carts: service.NewCartService(
			redis.NewCartStore(rdb, cfg.Cart.TTL),
			productRepo,
			orders,
			logger.For("cart"),
		),
		TrustedProxies:    proxies,
		Limiter:           redis.NewLoginLimiter(rdb, cfg.Login.RateLimit, cfg.Login.RateWindow),
		Readiness:         handlers.NewHealthDependenciesHandler(mongoClient, rdb),
		MetricsRegisterer: prometheus.DefaultRegisterer,
		MetricsGatherer:   prometheus.DefaultGatherer,
		Docs:              !cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		cancelWorkers()
		orders.Wait()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	cancelWorkers()
	orders.Wait()
	log.Info().Msg("storefront stopped")
	return nil
}
