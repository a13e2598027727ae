package matcher

import (
	"context"
	"errors"

	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/event"
	"github.com/osse101/NoriFarm_Go/internal/logger"
	"github.com/osse101/NoriFarm_Go/internal/repository"
)

// CropLister supplies the crop snapshot, with derived fields, to match against
type CropLister interface {
	List(ctx context.Context) ([]domain.Crop, error)
}

// Service matches queries against the live crop collection and catalog
type Service interface {
	Match(ctx context.Context, query string) (*domain.MatchResult, error)
}

type service struct {
	crops   CropLister
	catalog repository.ProductCatalog
	bus     event.Bus
	clock   clock.Clock
}

// NewService creates a matcher service. bus may be nil.
func NewService(crops CropLister, catalog repository.ProductCatalog, bus event.Bus, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{
		crops:   crops,
		catalog: catalog,
		bus:     bus,
		clock:   clk,
	}
}

func (s *service) Match(ctx context.Context, query string) (*domain.MatchResult, error) {
	log := logger.FromContext(ctx)

	crops, err := s.crops.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	out, err := Resolve(query, crops, products)
	payload := domain.MatchPayload{Query: query, Outcome: outcomeOf(err)}
	if out != nil {
		payload.CropID = out.Crop.ID
		payload.Tier = out.Tier
	}
	s.publish(ctx, event.NewMatchPerformedEvent(payload, s.clock.Now()))

	if err != nil {
		log.Info(LogMsgMatchMissed, "query", query, "outcome", payload.Outcome)
		return nil, err
	}

	log.Info(LogMsgMatchPerformed, "query", query, "crop_id", out.Crop.ID, "tier", out.Tier, "matches", out.Result.AllMatches)
	return out.Result, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return domain.MatchOutcomeMatched
	case errors.Is(err, domain.ErrValidation):
		return domain.MatchOutcomeInvalid
	case errors.Is(err, domain.ErrCropNotFound):
		return domain.MatchOutcomeNoCrop
	default:
		return domain.MatchOutcomeNoProduct
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}
