package discord

import (
	"github.com/bwmarrin/discordgo"
)

// MatchCommand finds the shop product for a crop
func MatchCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "match",
		Description: "Find the best product for one of your crops",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "crop",
				Description: "Crop name, crop id, or NFT token",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		query := ""
		if opt, ok := optionMap(i)["crop"]; ok {
			query = opt.StringValue()
		}

		ctx, cancel := commandContext()
		defer cancel()

		res, err := client.Match(ctx, query)
		if err != nil {
			respondFriendlyError(s, i, "match", err)
			return
		}
		sendEmbed(s, i, formatMatch(res))
	}

	return cmd, handler
}
