package crop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestComputeMaturity(t *testing.T) {
	planted := t0
	harvest := t0.Add(100 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"before planting clamps to zero", t0.Add(-time.Hour), 0},
		{"at planting", t0, 0},
		{"quarter way", t0.Add(25 * time.Hour), 25},
		{"half way", t0.Add(50 * time.Hour), 50},
		{"at harvest", harvest, 100},
		{"after harvest clamps to 100", harvest.Add(1000 * time.Hour), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeMaturity(planted, harvest, tt.now), 1e-9)
		})
	}
}

func TestComputeMaturity_ZeroGrowthWindow(t *testing.T) {
	assert.Equal(t, 100.0, ComputeMaturity(t0, t0, t0), "instantly mature at planting time")
	assert.Equal(t, 100.0, ComputeMaturity(t0, t0.Add(-time.Hour), t0.Add(time.Hour)))
	assert.Equal(t, 0.0, ComputeMaturity(t0, t0, t0.Add(-time.Second)), "not mature before planting")
}

func TestComputeMaturity_MonotonicInNow(t *testing.T) {
	planted := t0
	harvest := t0.Add(37 * 24 * time.Hour)

	prev := -1.0
	for now := t0.Add(-48 * time.Hour); now.Before(harvest.Add(48 * time.Hour)); now = now.Add(97 * time.Minute) {
		m := ComputeMaturity(planted, harvest, now)
		assert.GreaterOrEqual(t, m, prev, "maturity decreased at %s", now)
		assert.GreaterOrEqual(t, m, 0.0)
		assert.LessOrEqual(t, m, 100.0)
		prev = m
	}
}

func TestEnrich_RecomputesStoredDerivedFields(t *testing.T) {
	stored := domain.Crop{
		ID:            "c1",
		PlantedAt:     t0,
		HarvestAt:     t0.Add(10 * 24 * time.Hour),
		MaturityLevel: 100,
		IsReady:       true,
	}

	got := Enrich(stored, t0.Add(5*24*time.Hour))
	assert.InDelta(t, 50.0, got.MaturityLevel, 1e-9)
	assert.False(t, got.IsReady)

	got = Enrich(stored, t0.Add(10*24*time.Hour))
	assert.True(t, got.IsReady)
	assert.Equal(t, got.IsReady, got.MaturityLevel >= 100)
}

func TestIsGrowing(t *testing.T) {
	assert.False(t, IsGrowing(domain.Crop{MaturityLevel: 0}))
	assert.True(t, IsGrowing(domain.Crop{MaturityLevel: 40}))
	assert.False(t, IsGrowing(domain.Crop{MaturityLevel: 100, IsReady: true}))
}
