package crop

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/event"
	"github.com/osse101/NoriFarm_Go/internal/logger"
	"github.com/osse101/NoriFarm_Go/internal/repository"
)

// Service defines the crop lifecycle operations
type Service interface {
	// List returns every crop with derived fields recomputed
	List(ctx context.Context) ([]domain.Crop, error)
	// ListByStatus filters List by readiness
	ListByStatus(ctx context.Context, status domain.CropStatus) ([]domain.Crop, error)
	Get(ctx context.Context, id string) (*domain.Crop, error)
	Plant(ctx context.Context, input domain.PlantInput) (*domain.Crop, error)
	Harvest(ctx context.Context, id string) (*domain.HarvestEvent, error)
	Edit(ctx context.Context, id string, fields domain.CropFields) (*domain.Crop, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	store repository.CropStore
	bus   event.Bus
	clock clock.Clock
	rng   RandomSource

	// serializes read-modify-write against the store
	mu sync.Mutex
}

// NewService creates a crop service. A nil bus disables events; nil clk and
// rng fall back to the system clock and math/rand.
func NewService(store repository.CropStore, bus event.Bus, clk clock.Clock, rng RandomSource) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if rng == nil {
		rng = DefaultRandom()
	}
	return &service{
		store: store,
		bus:   bus,
		clock: clk,
		rng:   rng,
	}
}

func (s *service) load(ctx context.Context) ([]domain.Crop, time.Time, error) {
	crops, err := s.store.ListCrops(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: failed to list crops: %w", domain.ErrPersistence, err)
	}
	now := s.clock.Now()
	return EnrichAll(crops, now), now, nil
}

func find(crops []domain.Crop, id string) (domain.Crop, bool) {
	for _, c := range crops {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Crop{}, false
}

// List returns every crop with derived fields recomputed
func (s *service) List(ctx context.Context) ([]domain.Crop, error) {
	crops, _, err := s.load(ctx)
	return crops, err
}

// ListByStatus returns all, ready or growing crops
func (s *service) ListByStatus(ctx context.Context, status domain.CropStatus) ([]domain.Crop, error) {
	crops, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var keep func(domain.Crop) bool
	switch status {
	case domain.CropStatusAll:
		return crops, nil
	case domain.CropStatusReady:
		keep = func(c domain.Crop) bool { return c.IsReady }
	case domain.CropStatusGrowing:
		keep = IsGrowing
	default:
		return nil, domain.NewValidationError(map[string]string{"status": "Status must be ready or growing"})
	}

	out := make([]domain.Crop, 0, len(crops))
	for _, c := range crops {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns one crop
func (s *service) Get(ctx context.Context, id string) (*domain.Crop, error) {
	crops, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := find(crops, id)
	if !ok {
		return nil, fmt.Errorf("%w: crop %s", domain.ErrNotFound, id)
	}
	return &c, nil
}

// Plant validates the input and stores a new crop in the user collection
func (s *service) Plant(ctx context.Context, input domain.PlantInput) (*domain.Crop, error) {
	log := logger.FromContext(ctx)

	days, err := validatePlant(&input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	c := domain.Crop{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Type:          input.Type,
		PlantedAt:     now,
		HarvestAt:     now.Add(time.Duration(days) * domain.GrowthDurationDay),
		NFTTokenID:    newNFTTokenID(s.rng),
		ImageURL:      input.ImageURL,
		Description:   input.Description,
		ExpectedYield: input.ExpectedYield,
		Rarity:        input.Rarity,
	}
	if c.ImageURL == "" {
		c.ImageURL = domain.DefaultCropImageURL
	}
	c = Enrich(c, now)

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	log.Info(LogMsgCropPlanted, "crop_id", c.ID, "type", c.Type, "growth_days", days)
	s.publish(ctx, event.NewCropPlantedEvent(c))
	return &c, nil
}

// Harvest collects a ready crop and restarts its growth cycle with the same duration
func (s *service) Harvest(ctx context.Context, id string) (*domain.HarvestEvent, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	crops, now, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := find(crops, id)
	if !ok {
		return nil, fmt.Errorf("%w: crop %s not found", domain.ErrNotReady, id)
	}
	if !c.IsReady {
		log.Info(LogMsgHarvestTooSoon, "crop_id", id, "maturity", c.MaturityLevel)
		return nil, fmt.Errorf("%w: crop %s is at %.0f%%", domain.ErrNotReady, id, c.MaturityLevel)
	}

	h := domain.HarvestEvent{
		ID:           domain.HarvestIDPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		CropID:       c.ID,
		HarvestedAt:  now,
		Yield:        harvestYield(s.rng, c.ExpectedYield),
		QualityScore: qualityScore(s.rng),
		UserID:       domain.HarvestUserID,
	}

	duration := c.GrowthDuration()
	if duration <= 0 {
		duration = time.Duration(domain.DefaultGrowthDays[c.Type]) * domain.GrowthDurationDay
	}
	actual := h.Yield
	c.ActualYield = &actual
	c.PlantedAt = now
	c.HarvestAt = now.Add(duration)
	c = Enrich(c, now)

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	log.Info(LogMsgCropHarvested, "crop_id", c.ID, "yield", h.Yield, "quality", h.QualityScore)
	s.publish(ctx, event.NewCropHarvestedEvent(c, h))
	return &h, nil
}

// Edit replaces every mutable field of a crop
func (s *service) Edit(ctx context.Context, id string, fields domain.CropFields) (*domain.Crop, error) {
	if err := validateEdit(&fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	crops, now, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	existing, ok := find(crops, id)
	if !ok {
		return nil, fmt.Errorf("%w: crop %s", domain.ErrNotFound, id)
	}

	token := fields.NFTTokenID
	if token == "" {
		token = existing.NFTTokenID
	}
	if token == "" {
		token = newNFTTokenID(s.rng)
	}

	c := Enrich(domain.Crop{
		ID:            existing.ID,
		Name:          fields.Name,
		Type:          fields.Type,
		PlantedAt:     fields.PlantedAt,
		HarvestAt:     fields.HarvestAt,
		NFTTokenID:    token,
		ImageURL:      fields.ImageURL,
		Description:   fields.Description,
		ExpectedYield: fields.ExpectedYield,
		ActualYield:   fields.ActualYield,
		Rarity:        fields.Rarity,
	}, now)

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCropEdited, "crop_id", c.ID)
	s.publish(ctx, event.NewCropEditedEvent(c, now))
	return &c, nil
}

// Remove deletes a crop
func (s *service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	crops, now, err := s.load(ctx)
	if err != nil {
		return err
	}
	c, ok := find(crops, id)
	if !ok {
		return fmt.Errorf("%w: crop %s", domain.ErrNotFound, id)
	}

	if err := s.store.DeleteCrop(ctx, id); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, "crop_id", id, "error", err)
		return fmt.Errorf("%w: failed to delete crop %s: %w", domain.ErrPersistence, id, err)
	}

	logger.FromContext(ctx).Info(LogMsgCropRemoved, "crop_id", id)
	s.publish(ctx, event.NewCropRemovedEvent(c, now))
	return nil
}

func (s *service) persist(ctx context.Context, c domain.Crop) error {
	if err := s.store.PutCrop(ctx, c); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, "crop_id", c.ID, "error", err)
		return fmt.Errorf("%w: failed to store crop %s: %w", domain.ErrPersistence, c.ID, err)
	}
	return nil
}

// publish is fire-and-forget; a committed mutation never fails on event delivery
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
