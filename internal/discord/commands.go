package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// commandTimeout bounds the API work behind one interaction
const commandTimeout = 15 * time.Second

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandFactory creates a command definition and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandFactories lists every farm command
func CommandFactories() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		MatchCommand,
		CropsCommand,
		HarvestCommand,
	}
}

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle dispatches an interaction and reports whether a handler ran
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) bool {
	h, ok := r.Handlers[i.ApplicationCommandData().Name]
	if !ok {
		return false
	}
	h(s, i, client)
	return true
}

// RegisterCommands syncs the registry with Discord. Unchanged command sets
// are left alone to stay clear of rate limits.
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}

	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("failed to fetch existing commands: %w", err)
		}
		if commandsEqual(existing, desired) {
			slog.Info("Commands unchanged, skipping registration", "count", len(existing))
			return nil
		}
		slog.Info("Commands changed, updating", "existing", len(existing), "desired", len(desired))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}
	slog.Info("Commands updated successfully", "count", len(desired))
	return nil
}

func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}
	for _, want := range desired {
		got, ok := byName[want.Name]
		if !ok || !commandEqual(got, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

// deferResponse acknowledges an interaction before slow work.
// Returns false if the deferral failed and the handler should stop.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// optionMap indexes the interaction options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError logs err and shows the user a readable version of it
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) {
	slog.Error("Command failed", "action", action, "error", err)
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps API failures to user-facing text
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgAPIUnavailable
	}

	switch {
	case apiErr.StatusCode == http.StatusConflict:
		return MsgNotReady
	case strings.Contains(apiErr.Message, domain.ErrMsgNoProductMatch):
		return MsgNoProductMatch
	case strings.Contains(apiErr.Message, domain.ErrMsgCropNotFound):
		return MsgCropNotFound
	case apiErr.StatusCode == http.StatusNotFound:
		return MsgCropNotFound
	case apiErr.StatusCode == http.StatusBadRequest:
		return "❌ " + apiErr.Message
	case apiErr.StatusCode == http.StatusUnauthorized:
		return MsgAPIUnavailable
	default:
		return MsgGenericError
	}
}

func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed builds an embed with the standard footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterNoriFarm},
	}
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}
