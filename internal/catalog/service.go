package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/repository"
)

// Service provides product browsing on top of a ProductCatalog
type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	// Search filters by name/description substring and exact category, both case-insensitive.
	// Empty arguments do not filter.
	Search(ctx context.Context, query, category string) ([]domain.Product, error)
	Recommend(ctx context.Context, cropType domain.CropType) (*domain.Recommendation, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type service struct {
	catalog repository.ProductCatalog
}

// NewService creates a new catalog service
func NewService(catalog repository.ProductCatalog) Service {
	return &service{catalog: catalog}
}

func (s *service) List(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.ListProducts(ctx)
}

func (s *service) Search(ctx context.Context, query, category string) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.TrimSpace(category)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if cat != "" && !strings.EqualFold(p.Category, cat) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *service) Recommend(ctx context.Context, cropType domain.CropType) (*domain.Recommendation, error) {
	if cropType == "" {
		return nil, domain.NewValidationError(map[string]string{"type": "Crop type is required"})
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]domain.Product, 0)
	for _, p := range products {
		if p.RelatesTo(cropType) {
			related = append(related, p)
		}
	}

	return &domain.Recommendation{
		CropType: cropType,
		Products: related,
		Reason:   fmt.Sprintf(domain.RecommendationReasonFormat, cropType),
		Category: domain.RecommendationCategoryRelated,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			clone := p.Clone()
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
}
