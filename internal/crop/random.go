package crop

import (
	"fmt"
	"math/rand/v2"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// RandomSource supplies the randomness used for NFT tokens and harvest variance
type RandomSource interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

type defaultRandom struct{}

//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
func (defaultRandom) Float64() float64 { return rand.Float64() }

//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
func (defaultRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom returns the process-wide random source
func DefaultRandom() RandomSource {
	return defaultRandom{}
}

// newNFTTokenID returns NFT followed by a three-digit number
func newNFTTokenID(rng RandomSource) string {
	return fmt.Sprintf("%s%03d", domain.NFTTokenPrefix, 100+rng.IntN(900))
}

// harvestYield is expected + uniform(-1, 1)
func harvestYield(rng RandomSource, expected float64) float64 {
	return expected + rng.Float64()*domain.YieldVarianceRange - domain.YieldVarianceRange/2
}

// qualityScore is uniform in [80, 100)
func qualityScore(rng RandomSource) float64 {
	return domain.MinQualityScore + rng.Float64()*domain.QualityScoreRange
}
