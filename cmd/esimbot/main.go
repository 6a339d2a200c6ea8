package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"esimbot/internal/booking"
	"esimbot/internal/config"
	"esimbot/internal/logger"
	"esimbot/internal/telegram"
)

const defaultConfigPath = "config.yaml"

func main() {
	if err := run(); err != nil {
		log.Fatalf("esimbot: %v", err)
	}
}

func run() error {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}
	appLog := logger.Component("app")

	slots := booking.NewSlotRegistry()
	store := booking.NewStore(slots)
	sessions := booking.NewSessions()
	flow := booking.NewFlow(sessions, slots, store, cfg.Telegram.AdminID, logger.Component("booking"))

	bot, err := telegram.New(cfg, flow)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	appLog.Info("app ready",
		slog.String("event", "ready"),
		slog.String("run_mode", cfg.Telegram.RunMode),
		slog.String("timezone", cfg.Booking.Timezone),
	)
	return bot.Run(ctx)
}
