package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot is the NoriFarm Discord front end. It talks to the farm only through
// the HTTP API.
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Registry *CommandRegistry
	Stats    *CommandStats

	notificationChannelID string
	feed                  *SSEClient
}

// Config holds the bot configuration
type Config struct {
	Token  string
	AppID  string
	APIURL string
	APIKey string

	// NotificationChannelID receives crop feed announcements when set
	NotificationChannelID string
}

// New creates a bot with every farm command registered
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	b := &Bot{
		Session:               s,
		Client:                NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:                 cfg.AppID,
		Registry:              NewCommandRegistry(),
		Stats:                 NewCommandStats(),
		notificationChannelID: cfg.NotificationChannelID,
	}
	for _, factory := range CommandFactories() {
		b.Registry.Register(factory())
	}

	if cfg.NotificationChannelID != "" {
		b.feed = NewSSEClient(cfg.APIURL, cfg.APIKey, []string{SSEEventTypeCropPlanted, SSEEventTypeCropHarvested})
		NewSSENotifier(s, cfg.NotificationChannelID).RegisterHandlers(b.feed)
	}
	return b, nil
}

// Start opens the gateway connection and, when configured, the crop feed
func (b *Bot) Start(ctx context.Context) error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	if b.feed != nil {
		b.feed.Start(ctx)
		slog.Info("Crop feed notifications enabled", "channel_id", b.notificationChannelID)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the feed and the gateway connection
func (b *Bot) Stop() {
	if b.feed != nil {
		b.feed.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Warn("Discord session close failed", "error", err)
	}
}

// Run starts the bot and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(ctx); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

// Connected reports whether the gateway session is ready
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.Registry.Handle(s, i, b.Client) {
		b.Stats.Record()
	}
}
