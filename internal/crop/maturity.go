package crop

import (
	"time"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// ComputeMaturity returns growth progress as a percentage clamped to [0, 100].
// A zero or negative growth window is instantly mature once now reaches plantedAt.
func ComputeMaturity(plantedAt, harvestAt, now time.Time) float64 {
	total := harvestAt.Sub(plantedAt)
	if total <= 0 {
		if now.Before(plantedAt) {
			return 0
		}
		return domain.MaxMaturityLevel
	}

	pct := float64(now.Sub(plantedAt)) / float64(total) * domain.MaxMaturityLevel
	switch {
	case pct < 0:
		return 0
	case pct > domain.MaxMaturityLevel:
		return domain.MaxMaturityLevel
	default:
		return pct
	}
}

// Enrich recomputes the derived fields of c at now. Stored values are ignored.
func Enrich(c domain.Crop, now time.Time) domain.Crop {
	c.MaturityLevel = ComputeMaturity(c.PlantedAt, c.HarvestAt, now)
	c.IsReady = c.MaturityLevel >= domain.MaxMaturityLevel
	return c
}

// EnrichAll enriches every crop in place order
func EnrichAll(crops []domain.Crop, now time.Time) []domain.Crop {
	out := make([]domain.Crop, len(crops))
	for i, c := range crops {
		out[i] = Enrich(c, now)
	}
	return out
}

// IsGrowing reports a crop that has started but is not ready
func IsGrowing(c domain.Crop) bool {
	return !c.IsReady && c.MaturityLevel > 0
}
