package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot"
	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
	"github.com/AiBusiness-KZ/PizzaMat/internal/config"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// sessionTTL keeps an abandoned conversation around long enough to resume a
// checkout, and no longer.
const sessionTTL = 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()
	logger.Init(cfg.Env)
	defer logger.Sync()

	if cfg.Bot.Token == "" {
		logger.L().Fatal("BOT_TOKEN is not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		logger.L().Fatal("telegram api init failed", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sessions := redisstore.NewSessionStore(rdb, sessionTTL)

	backend := client.New(cfg.Bot.BackendURL)

	driver := bot.NewDriver(api, backend, sessions, cfg.Bot.ManagerChannelID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.L().Fatal("bot stopped", zap.Error(err))
	}
	logger.L().Info("bot shut down")
}
