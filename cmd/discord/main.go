package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/NoriFarm_Go/internal/config"
	"github.com/osse101/NoriFarm_Go/internal/discord"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultWebhookPort = "8082"
)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.NewConfig(
		os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"),
		"norifarm-discord", os.Getenv("APP_VERSION"), os.Getenv("ENVIRONMENT"), false))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	webhookPort := os.Getenv("DISCORD_WEBHOOK_PORT")
	if webhookPort == "" {
		webhookPort = DefaultWebhookPort
	}
	httpServer := discord.NewHTTPServer(webhookPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(forceUpdate); err != nil {
		// commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Discord bot stopped")
}

// loadConfig reads bot configuration from the environment.
func loadConfig() (discord.Config, error) {
	if err := config.ValidateDiscordEnv(); err != nil {
		return discord.Config{}, err
	}

	apiURL := os.Getenv("API_URL")
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	return discord.Config{
		Token:                 os.Getenv("DISCORD_TOKEN"),
		AppID:                 os.Getenv("DISCORD_APP_ID"),
		APIURL:                apiURL,
		APIKey:                apiKey,
		NotificationChannelID: os.Getenv("DISCORD_NOTIFICATION_CHANNEL_ID"),
	}, nil
}
