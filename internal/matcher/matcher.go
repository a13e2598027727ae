package matcher

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// Outcome carries the resolved crop and the tier that produced the product,
// alongside the response.
type Outcome struct {
	Result *domain.MatchResult
	Crop   domain.Crop
	Tier   int
}

// Match resolves query to one crop and recommends one product for it.
// crops must already carry derived maturity fields. The inputs are only
// read, so Match is safe to call concurrently on shared snapshots.
func Match(query string, crops []domain.Crop, products []domain.Product) (*domain.MatchResult, error) {
	out, err := Resolve(query, crops, products)
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}

// Resolve is Match with the intermediate crop and tier exposed
func Resolve(query string, crops []domain.Crop, products []domain.Product) (*Outcome, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError(map[string]string{"query": MsgQueryRequired})
	}

	crop, ok := findCrop(query, crops)
	if !ok {
		return nil, fmt.Errorf("%w: no crop found for query: %s", domain.ErrCropNotFound, query)
	}

	matches, tier := findProducts(crop, products)
	if len(matches) == 0 {
		return &Outcome{Crop: crop, Tier: tierNone},
			fmt.Errorf("%w: no matching products found for crop: %s", domain.ErrNoProductMatch, crop.Name)
	}

	best := matches[0]
	return &Outcome{
		Crop: crop,
		Tier: tier,
		Result: &domain.MatchResult{
			Crop: CropLabel(crop),
			MatchedProduct: domain.MatchedProduct{
				Title:       best.Name,
				Price:       FormatPrice(best.Price),
				Image:       best.ImageURL,
				BuyLink:     BuyLink(best),
				Description: best.Description,
				Rating:      best.Rating,
				InStock:     best.InStock,
			},
			CropDetails: domain.CropDetails{
				ID:            crop.ID,
				Type:          crop.Type,
				MaturityLevel: int(math.Round(crop.MaturityLevel)),
				IsReady:       crop.IsReady,
				Rarity:        crop.Rarity,
			},
			AllMatches: len(matches),
		},
	}, nil
}

// findCrop returns the first crop whose name contains the query, whose token
// equals it, or whose name is contained in it. Case-insensitive.
func findCrop(query string, crops []domain.Crop) (domain.Crop, bool) {
	q := strings.ToLower(query)
	for _, c := range crops {
		name := strings.ToLower(c.Name)
		if strings.Contains(name, q) ||
			(c.NFTTokenID != "" && strings.EqualFold(c.NFTTokenID, query)) ||
			strings.Contains(q, name) {
			return c, true
		}
	}
	return domain.Crop{}, false
}

// findProducts keeps every product related by type or mentioning the crop
// name. When none qualify, the first type-related product alone is used and
// the match count is 1 regardless of how many others exist.
func findProducts(crop domain.Crop, products []domain.Product) ([]domain.Product, int) {
	name := strings.ToLower(crop.Name)

	var matches []domain.Product
	for _, p := range products {
		if p.RelatesTo(crop.Type) ||
			strings.Contains(strings.ToLower(p.Name), name) ||
			strings.Contains(strings.ToLower(p.Description), name) {
			matches = append(matches, p)
		}
	}
	if len(matches) > 0 {
		return matches, tierRelated
	}

	for _, p := range products {
		if p.RelatesTo(crop.Type) {
			return []domain.Product{p}, tierFallback
		}
	}
	return nil, tierNone
}
