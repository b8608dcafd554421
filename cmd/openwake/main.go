package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jdelaire/openwake/adapters/telegram"
	"github.com/jdelaire/openwake/core"
	"github.com/jdelaire/openwake/core/ops"
	"github.com/jdelaire/openwake/core/policy"
	"github.com/jdelaire/openwake/internal/config"
	"github.com/jdelaire/openwake/internal/wol"
)

func main() {
	logger := initializeLogger()

	setToken := flag.String("set-token", "", "store the bot token in the system keychain and exit")
	flag.Parse()

	if *setToken != "" {
		if err := config.StoreToken(*setToken); err != nil {
			logger.Error("storing bot token failed", "error", err)
			os.Exit(1)
		}
		logger.Info("bot token stored in keychain")
		return
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	client := telegram.New(cfg.BotToken, logger)
	if cfg.BaseURL != "" {
		client.WithBaseURL(cfg.BaseURL)
	}

	registry := ops.NewRegistry()
	for _, op := range []ops.Op{
		&ops.HealthOp{},
		&ops.WakeOp{Waker: wol.NewSender(), Target: cfg.TargetMAC, Logger: logger},
		&ops.StatusOp{},
		&ops.HelpOp{Registry: registry},
	} {
		if err := registry.Register(op); err != nil {
			logger.Error("op registration failed", "error", err)
			os.Exit(1)
		}
	}

	dispatcher := core.NewDispatcher(policy.New(cfg.AuthorizedChats), registry, client, logger)
	poller := core.NewPoller(client, dispatcher.Handle, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("openwake starting", "target", cfg.TargetMAC.String(), "authorized_chats", len(cfg.AuthorizedChats))
	if err := poller.Run(ctx); err != nil {
		logger.Error("poller exited", "error", err)
		os.Exit(1)
	}
	logger.Info("openwake stopped")
}

func initializeLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("OPENWAKE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
