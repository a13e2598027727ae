package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	planted := testutil.ToFloat64(CropsPlanted.WithLabelValues("herb", "epic"))
	harvested := testutil.ToFloat64(CropsHarvested.WithLabelValues("herb"))
	noCrop := testutil.ToFloat64(MatchesTotal.WithLabelValues(domain.MatchOutcomeNoCrop))

	c := domain.Crop{ID: "c1", Type: domain.CropTypeHerb, Rarity: domain.RarityEpic}
	require.NoError(t, bus.Publish(ctx, event.NewCropPlantedEvent(c)))
	require.NoError(t, bus.Publish(ctx, event.NewCropHarvestedEvent(c, domain.HarvestEvent{Yield: 5, QualityScore: 90})))
	require.NoError(t, bus.Publish(ctx, event.Event{
		Type:    event.MatchPerformed,
		Payload: map[string]interface{}{"query": "kale", "outcome": domain.MatchOutcomeNoCrop},
	}))

	assert.Equal(t, planted+1, testutil.ToFloat64(CropsPlanted.WithLabelValues("herb", "epic")))
	assert.Equal(t, harvested+1, testutil.ToFloat64(CropsHarvested.WithLabelValues("herb")))
	assert.Equal(t, noCrop+1, testutil.ToFloat64(MatchesTotal.WithLabelValues(domain.MatchOutcomeNoCrop)), "map payloads decode too")
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.CropPlanted)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.CropPlanted,
		Payload: "not a payload",
	})
	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.CropPlanted))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/crops/{cropID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/crops/{cropID}", "418"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crops/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/crops/{cropID}", "418")))
}
