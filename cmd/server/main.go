package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/commons"
	"storefront/internal/config"
	"storefront/internal/contact"
	"storefront/internal/content"
	"storefront/internal/infrastructure/logger"
	"storefront/internal/infrastructure/metrics"
	"storefront/internal/infrastructure/mysql"
	"storefront/internal/infrastructure/redis"
	"storefront/internal/order"
	"storefront/internal/product"
	"storefront/internal/review"
	"storefront/internal/server"
)

func main() {
	file, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config file: %v", err)
	}

	cfg, err := config.Load(file)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log, "storefront")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("redis connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	serverMetrics := metrics.NewServerMetrics(registry)

	productModule := product.NewModule(db, zapLogger)
	orderModule := order.NewModule(db, cfg, productModule.Catalog, serverMetrics, zapLogger)

	router := server.NewRouter(server.Handlers{
		Auth:           auth.NewModule(db, redisClient, cfg.Auth, zapLogger),
		Order:          orderModule,
		Product:        productModule.Controller,
		Content:        content.NewModule(db, zapLogger),
		Review:         review.NewModule(db, zapLogger),
		Contact:        contact.NewModule(db, zapLogger),
		Metrics:        serverMetrics.Middleware,
		MetricsHandler: metrics.Handler(registry),
	}, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		zapLogger.Fatal("server error", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
