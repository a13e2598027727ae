package discord

import (
	"github.com/bwmarrin/discordgo"
)

// HarvestCommand harvests a ready crop by id
func HarvestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "harvest",
		Description: "Harvest a ready crop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "crop_id",
				Description: "Crop id from /crops",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		cropID := ""
		if opt, ok := optionMap(i)["crop_id"]; ok {
			cropID = opt.StringValue()
		}

		ctx, cancel := commandContext()
		defer cancel()

		evt, err := client.HarvestCrop(ctx, cropID)
		if err != nil {
			respondFriendlyError(s, i, "harvest", err)
			return
		}
		sendEmbed(s, i, formatHarvest(evt))
	}

	return cmd, handler
}
