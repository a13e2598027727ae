package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Crop and matcher event types
const (
	CropPlanted    Type = domain.EventTypeCropPlanted
	CropHarvested  Type = domain.EventTypeCropHarvested
	CropEdited     Type = domain.EventTypeCropEdited
	CropRemoved    Type = domain.EventTypeCropRemoved
	MatchPerformed Type = domain.EventTypeMatchPerformed
)

const metaKeyOccurred = "occurred_at"

func newEvent(t Type, payload interface{}, at time.Time) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{metaKeyOccurred: at.UTC().Format(time.RFC3339)},
	}
}

func cropPayload(c domain.Crop) domain.CropPayload {
	return domain.CropPayload{CropID: c.ID, CropType: c.Type, Rarity: c.Rarity}
}

// NewCropPlantedEvent creates a crop.planted event
func NewCropPlantedEvent(c domain.Crop) Event {
	return newEvent(CropPlanted, cropPayload(c), c.PlantedAt)
}

// NewCropEditedEvent creates a crop.edited event
func NewCropEditedEvent(c domain.Crop, at time.Time) Event {
	return newEvent(CropEdited, cropPayload(c), at)
}

// NewCropRemovedEvent creates a crop.removed event
func NewCropRemovedEvent(c domain.Crop, at time.Time) Event {
	return newEvent(CropRemoved, cropPayload(c), at)
}

// NewCropHarvestedEvent creates a crop.harvested event
func NewCropHarvestedEvent(c domain.Crop, h domain.HarvestEvent) Event {
	return newEvent(CropHarvested, domain.HarvestPayload{
		CropID:       c.ID,
		CropType:     c.Type,
		Yield:        h.Yield,
		QualityScore: h.QualityScore,
	}, h.HarvestedAt)
}

// NewMatchPerformedEvent creates a match.performed event
func NewMatchPerformedEvent(p domain.MatchPayload, at time.Time) Event {
	return newEvent(MatchPerformed, p, at)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
