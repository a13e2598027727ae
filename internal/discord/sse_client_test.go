package discord

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu     sync.Mutex
	embeds []*discordgo.MessageEmbed
	err    error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeSender) sent() []*discordgo.MessageEmbed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*discordgo.MessageEmbed(nil), f.embeds...)
}

const feedStream = "event: connected\ndata: {\"type\":\"connected\"}\n\n" +
	"event: keepalive\ndata: {\"type\":\"keepalive\"}\n\n" +
	"id: e1\nevent: crop.planted\ndata: {\"id\":\"e1\",\"type\":\"crop.planted\",\"timestamp\":1748768400,\"payload\":{\"crop_id\":\"3\",\"crop_type\":\"herb\",\"rarity\":\"epic\"}}\n\n" +
	"id: e2\nevent: crop.harvested\ndata: {\"id\":\"e2\",\"type\":\"crop.harvested\",\"timestamp\":1748768460,\"payload\":{\"crop_id\":\"3\",\"crop_type\":\"herb\",\"yield\":4.5,\"quality_score\":88}}\n\n" +
	"event: crop.planted\ndata: {not json}\n\n"

func TestSSEClient_ReadEventsDispatches(t *testing.T) {
	client := NewSSEClient("http://farm", "", nil)
	sender := &fakeSender{}
	NewSSENotifier(sender, "chan-1").RegisterHandlers(client)

	err := client.readEvents(strings.NewReader(feedStream))
	assert.ErrorIs(t, err, errStreamClosed)

	embeds := sender.sent()
	require.Len(t, embeds, 2)
	assert.Equal(t, "🌱 Crop Planted", embeds[0].Title)
	assert.Contains(t, embeds[0].Description, "epic herb")
	assert.Equal(t, "2025-06-01T09:00:00Z", embeds[0].Timestamp)
	assert.Equal(t, "🧺 Crop Harvested", embeds[1].Title)
	assert.Contains(t, embeds[1].Description, "**4.5**")
}

func TestSSENotifier_SendFailureIsReported(t *testing.T) {
	sender := &fakeSender{err: errors.New("missing access")}
	n := NewSSENotifier(sender, "chan-1")

	err := n.handleCropPlanted(SSEEvent{Type: SSEEventTypeCropPlanted, Payload: []byte(`{"crop_id":"1"}`)})
	assert.Error(t, err)

	err = n.handleCropHarvested(SSEEvent{Type: SSEEventTypeCropHarvested, Payload: []byte(`"nope"`)})
	assert.Error(t, err)
}

func TestSSEClient_StreamsFromServer(t *testing.T) {
	var (
		mu               sync.Mutex
		gotQuery, gotKey string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotQuery = r.URL.Query().Get("types")
		gotKey = r.Header.Get("X-API-Key")
		mu.Unlock()
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(feedStream))
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewSSEClient(srv.URL, "bot-key", []string{SSEEventTypeCropPlanted, SSEEventTypeCropHarvested})
	client.httpClient = srv.Client()
	sender := &fakeSender{}
	NewSSENotifier(sender, "chan-1").RegisterHandlers(client)

	client.Start(context.Background())
	require.Eventually(t, func() bool { return len(sender.sent()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, client.IsConnected())

	client.Stop()
	client.Stop()
	assert.False(t, client.IsConnected())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "crop.planted,crop.harvested", gotQuery)
	assert.Equal(t, "bot-key", gotKey)
}
