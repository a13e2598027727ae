package discord

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not ready", &APIError{StatusCode: http.StatusConflict, Message: domain.ErrMsgNotReady}, MsgNotReady},
		{"no product", &APIError{StatusCode: http.StatusNotFound, Message: domain.ErrMsgNoProductMatch}, MsgNoProductMatch},
		{"crop not found", &APIError{StatusCode: http.StatusNotFound, Message: "crop not found: no crop found for query: kale"}, MsgCropNotFound},
		{"bad request passes message", &APIError{StatusCode: http.StatusBadRequest, Message: "query is required"}, "❌ query is required"},
		{"server error", &APIError{StatusCode: http.StatusInternalServerError, Message: "Something went wrong"}, MsgGenericError},
		{"wrapped api error", fmt.Errorf("max retries exceeded: %w", &APIError{StatusCode: http.StatusBadGateway}), MsgGenericError},
		{"transport error", errors.New("dial tcp: connection refused"), MsgAPIUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err))
		})
	}
}

func TestCommandFactories_UniqueNames(t *testing.T) {
	registry := NewCommandRegistry()
	for _, factory := range CommandFactories() {
		registry.Register(factory())
	}

	for _, name := range []string{"ping", "match", "crops", "harvest"} {
		assert.Contains(t, registry.Commands, name)
		assert.Contains(t, registry.Handlers, name)
	}
	assert.Len(t, registry.Commands, len(CommandFactories()))
}

func TestCommandsEqual(t *testing.T) {
	match, _ := MatchCommand()
	crops, _ := CropsCommand()

	changed := *match
	changed.Description = "something else"

	assert.True(t, commandsEqual([]*discordgo.ApplicationCommand{crops, match}, []*discordgo.ApplicationCommand{match, crops}))
	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{match}, []*discordgo.ApplicationCommand{match, crops}))
	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{&changed, crops}, []*discordgo.ApplicationCommand{match, crops}))
}

func TestFormatCropList(t *testing.T) {
	empty := formatCropList(nil, domain.CropStatusReady)
	assert.Equal(t, "🌾 Crops · Ready", empty.Title)
	assert.Equal(t, MsgNoCrops, empty.Description)

	crops := make([]domain.Crop, maxListedCrops+3)
	for i := range crops {
		crops[i] = domain.Crop{ID: fmt.Sprint(i), Name: "Kale", Type: domain.CropTypeVegetable, MaturityLevel: 40}
	}
	crops[0].IsReady = true
	crops[0].NFTTokenID = "NFT0042"

	embed := formatCropList(crops, domain.CropStatusAll)
	assert.Equal(t, "🌾 Crops", embed.Title)
	assert.True(t, strings.HasPrefix(embed.Description, "✅ **Kale #0042** (`0`) Vegetable · 40%\n"))
	assert.True(t, strings.HasSuffix(embed.Description, "…and 3 more"))
}

func TestFormatMatch(t *testing.T) {
	embed := formatMatch(&domain.MatchResult{
		Crop: "Golden Corn #0001",
		MatchedProduct: domain.MatchedProduct{
			Title: "Corn Seeds", Price: "12,900 KRW", Rating: 4.5, InStock: true,
			BuyLink: "https://shop.example/corn", Image: "https://img.example/corn.png",
		},
		CropDetails: domain.CropDetails{Type: domain.CropTypeGrain, MaturityLevel: 100, IsReady: true, Rarity: domain.RarityLegendary},
		AllMatches:  3,
	})

	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "🛒 Golden Corn #0001", embed.Title)
	assert.Equal(t, ColorRare, embed.Color)
	assert.Contains(t, embed.Description, "**Corn Seeds** · 12,900 KRW · in stock")
	assert.Contains(t, embed.Description, "Legendary grain · maturity 100% · ready to harvest")
	assert.Contains(t, embed.Description, "3 products match this crop")
}
