package discord

import (
	"github.com/bwmarrin/discordgo"
)

// PingCommand checks that the bot and the farm API are reachable
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot and the farm are online",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		if !client.Healthy(ctx) {
			respondError(s, i, MsgAPIUnavailable)
			return
		}
		sendEmbed(s, i, createEmbed("🏓 Pong!", "The farm is online.", ColorSuccess))
	}

	return cmd, handler
}
