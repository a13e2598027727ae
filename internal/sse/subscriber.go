package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/event"
)

// Subscriber bridges crop events on the bus to the feed hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the feed for every crop event type
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.CropPlanted, s.handleCropChange)
	s.bus.Subscribe(event.CropEdited, s.handleCropChange)
	s.bus.Subscribe(event.CropRemoved, s.handleCropChange)
	s.bus.Subscribe(event.CropHarvested, s.handleHarvest)

	slog.Info(LogMsgSubscribed, "types", []event.Type{
		event.CropPlanted, event.CropEdited, event.CropRemoved, event.CropHarvested,
	})
}

func (s *Subscriber) handleCropChange(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.CropPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgBadPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.forward(evt.Type, payload)
	return nil
}

func (s *Subscriber) handleHarvest(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.HarvestPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgBadPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.forward(evt.Type, payload)
	return nil
}

func (s *Subscriber) forward(t event.Type, payload interface{}) {
	if s.hub.Broadcast(string(t), payload) {
		slog.Debug(LogMsgEventBroadcast, "event_type", t)
	}
}
