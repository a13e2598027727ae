package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// CropsCommand lists the field, optionally only ready or growing crops
func CropsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "crops",
		Description: "Show the crops in the field",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "status",
				Description: "Only show ready or growing crops",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Ready", Value: string(domain.CropStatusReady)},
					{Name: "Growing", Value: string(domain.CropStatusGrowing)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		status := domain.CropStatusAll
		if opt, ok := optionMap(i)["status"]; ok {
			status = domain.CropStatus(opt.StringValue())
		}

		ctx, cancel := commandContext()
		defer cancel()

		crops, err := client.ListCrops(ctx, status)
		if err != nil {
			respondFriendlyError(s, i, "list crops", err)
			return
		}
		sendEmbed(s, i, formatCropList(crops, status))
	}

	return cmd, handler
}
