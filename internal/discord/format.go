package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/matcher"
)

// maxListedCrops keeps /crops inside Discord's embed description limit
const maxListedCrops = 20

var titleCaser = cases.Title(language.English)

func titleCase(s string) string {
	return titleCaser.String(s)
}

func rarityColor(r domain.Rarity) int {
	switch r {
	case domain.RarityRare, domain.RarityEpic, domain.RarityLegendary:
		return ColorRare
	default:
		return ColorInfo
	}
}

func formatMatch(res *domain.MatchResult) *discordgo.MessageEmbed {
	p := res.MatchedProduct

	stock := "in stock"
	if !p.InStock {
		stock = "out of stock"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** · %s · %s\n", p.Title, p.Price, stock)
	fmt.Fprintf(&b, "Rating: %.1f\n", p.Rating)
	if p.BuyLink != "" {
		fmt.Fprintf(&b, "[Buy now](%s)\n", p.BuyLink)
	}

	d := res.CropDetails
	fmt.Fprintf(&b, "\n%s %s · maturity %d%%", titleCase(string(d.Rarity)), d.Type, d.MaturityLevel)
	if d.IsReady {
		b.WriteString(" · ready to harvest")
	}
	if res.AllMatches > 1 {
		fmt.Fprintf(&b, "\n%d products match this crop", res.AllMatches)
	}

	embed := createEmbed("🛒 "+res.Crop, b.String(), rarityColor(d.Rarity))
	if p.Image != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.Image}
	}
	return embed
}

func formatCropList(crops []domain.Crop, status domain.CropStatus) *discordgo.MessageEmbed {
	title := "🌾 Crops"
	if status != domain.CropStatusAll {
		title += " · " + titleCase(string(status))
	}
	if len(crops) == 0 {
		return createEmbed(title, MsgNoCrops, ColorInfo)
	}

	var b strings.Builder
	for idx, c := range crops {
		if idx == maxListedCrops {
			fmt.Fprintf(&b, "…and %d more", len(crops)-maxListedCrops)
			break
		}
		marker := "🌱"
		if c.IsReady {
			marker = "✅"
		}
		fmt.Fprintf(&b, "%s **%s** (`%s`) %s · %.0f%%\n", marker, matcher.CropLabel(c), c.ID, titleCase(string(c.Type)), c.MaturityLevel)
	}
	return createEmbed(title, b.String(), ColorInfo)
}

func formatHarvest(evt *domain.HarvestEvent) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("**Yield:** %.1f\n**Quality:** %.0f/100\n\nThe crop has been replanted.", evt.Yield, evt.QualityScore)
	return createEmbed("Harvest Complete!", desc, ColorSuccess)
}
