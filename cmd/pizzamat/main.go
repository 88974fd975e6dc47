package main

import (
	"context"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/app/background"
	"github.com/AiBusiness-KZ/PizzaMat/internal/config"
	"github.com/AiBusiness-KZ/PizzaMat/internal/delivery/httpapi"
	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/kafka"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/metrics"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/migrate"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/n8n"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/repository"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/uploads"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	"github.com/AiBusiness-KZ/PizzaMat/internal/usecase"
	orderusecase "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/order"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()
	logger.Init(cfg.Env)
	defer logger.Sync()

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
		logger.L().Fatal("migrations failed", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	receiptStore, err := uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxFileSize)
	if err != nil {
		logger.L().Fatal("uploads dir init failed", zap.Error(err))
	}

	var publisher *kafka.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
	}

	workflow := n8n.NewClient(cfg.N8N.URL, cfg.N8N.WebhookSecret,
		time.Duration(cfg.N8N.TimeoutSec)*time.Second)

	orderMetrics := metrics.NewOrderMetrics()

	orderRepo := repository.NewDefaultOrderRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	catalogRepo := repository.NewDefaultCatalogRepository(db)
	telemetryRepo := repository.NewDefaultTelemetryRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)

	orderUC := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		userRepo,
		catalogRepo,
		receiptStore,
		workflow,
		eventPublisher(publisher),
		orderMetrics,
	)
	catalogUC := usecase.NewDefaultCatalogUsecase(catalogRepo)
	userUC := usecase.NewDefaultUserUsecase(userRepo)
	analyticsUC := usecase.NewDefaultAnalyticsUsecase(telemetryRepo)
	settingsUC := usecase.NewDefaultSettingsUsecase(settingsRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(orderUC, analyticsUC)
	tasks.StartAll(ctx)

	handler := httpapi.NewHandler(httpapi.HandlerOptions{
		Orders:        orderUC,
		Catalog:       catalogUC,
		Users:         userUC,
		Analytics:     analyticsUC,
		Settings:      settingsUC,
		Images:        receiptStore,
		Issuer:        httpapi.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour),
		Limiter:       redisstore.NewRateLimiter(rdb),
		WebhookSecret: cfg.N8N.WebhookSecret,
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassHash: cfg.Auth.AdminPasswordHash,
		UploadsDir:    cfg.Uploads.Dir,
	})

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	addr := net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	logger.L().Info("http server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.L().Fatal("http server failed", zap.Error(err))
	}
}

// eventPublisher keeps the interface nil when kafka is not configured, so
// the usecase skips publishing instead of calling through a nil writer.
func eventPublisher(p *kafka.Publisher) domain.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
