package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MessageSender posts embeds to a channel. *discordgo.Session satisfies it.
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SSENotifier announces crop feed events in a Discord channel
type SSENotifier struct {
	sender    MessageSender
	channelID string
}

func NewSSENotifier(sender MessageSender, channelID string) *SSENotifier {
	return &SSENotifier{sender: sender, channelID: channelID}
}

// RegisterHandlers subscribes the notifier to the feed
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(SSEEventTypeCropPlanted, n.handleCropPlanted)
	client.OnEvent(SSEEventTypeCropHarvested, n.handleCropHarvested)
}

func (n *SSENotifier) handleCropPlanted(evt SSEEvent) error {
	var p domain.CropPayload
	if err := json.Unmarshal(evt.Payload, &p); err != nil {
		return fmt.Errorf("decode %s payload: %w", evt.Type, err)
	}
	desc := fmt.Sprintf("A new %s %s was planted (`%s`).", p.Rarity, p.CropType, p.CropID)
	return n.send(evt, createEmbed("🌱 Crop Planted", desc, rarityColor(p.Rarity)))
}

func (n *SSENotifier) handleCropHarvested(evt SSEEvent) error {
	var p domain.HarvestPayload
	if err := json.Unmarshal(evt.Payload, &p); err != nil {
		return fmt.Errorf("decode %s payload: %w", evt.Type, err)
	}
	desc := fmt.Sprintf("Crop `%s` (%s) yielded **%.1f** at quality %.0f/100.", p.CropID, p.CropType, p.Yield, p.QualityScore)
	return n.send(evt, createEmbed("🧺 Crop Harvested", desc, ColorSuccess))
}

func (n *SSENotifier) send(evt SSEEvent, embed *discordgo.MessageEmbed) error {
	if evt.Timestamp > 0 {
		embed.Timestamp = time.Unix(evt.Timestamp, 0).UTC().Format(time.RFC3339)
	}
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", evt.Type, "error", err)
		return err
	}
	return nil
}
