package metrics

import (
	"context"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/event"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all crop and matcher events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.CropPlanted,
		event.CropHarvested,
		event.CropEdited,
		event.CropRemoved,
		event.MatchPerformed,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics. Undecodable payloads
// are counted as handler errors but never fail the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CropPlanted:
		var p domain.CropPayload
		if p, err = event.DecodePayload[domain.CropPayload](evt.Payload); err == nil {
			CropsPlanted.WithLabelValues(string(p.CropType), string(p.Rarity)).Inc()
		}
	case event.CropEdited:
		var p domain.CropPayload
		if p, err = event.DecodePayload[domain.CropPayload](evt.Payload); err == nil {
			CropsEdited.WithLabelValues(string(p.CropType)).Inc()
		}
	case event.CropRemoved:
		var p domain.CropPayload
		if p, err = event.DecodePayload[domain.CropPayload](evt.Payload); err == nil {
			CropsRemoved.WithLabelValues(string(p.CropType)).Inc()
		}
	case event.CropHarvested:
		var p domain.HarvestPayload
		if p, err = event.DecodePayload[domain.HarvestPayload](evt.Payload); err == nil {
			CropsHarvested.WithLabelValues(string(p.CropType)).Inc()
			HarvestYield.Observe(p.Yield)
			HarvestQuality.Observe(p.QualityScore)
		}
	case event.MatchPerformed:
		var p domain.MatchPayload
		if p, err = event.DecodePayload[domain.MatchPayload](evt.Payload); err == nil {
			MatchesTotal.WithLabelValues(p.Outcome).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
