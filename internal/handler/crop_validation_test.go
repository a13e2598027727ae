package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/crop"
	"github.com/osse101/NoriFarm_Go/internal/event"
	"github.com/osse101/NoriFarm_Go/internal/handler"
	"github.com/osse101/NoriFarm_Go/internal/storage"
)

func newRealCropHandler(t *testing.T) *handler.CropHandler {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc := crop.NewService(store, event.NewMemoryBus(), clock.NewSimulatedClock(plantedAt), crop.DefaultRandom())
	return handler.NewCropHandler(svc)
}

func TestCropHandler_ReportsEveryInvalidField(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		wantFields []string
	}{
		{
			name:       "plant with blank name and zero numbers",
			method:     http.MethodPost,
			body:       `{"name":"   ","type":"grain","rarity":"common","expectedYield":0,"growthDuration":0}`,
			wantFields: []string{"name", "description", "expectedYield", "growthDuration"},
		},
		{
			name:       "plant with unknown enums and overlong url",
			method:     http.MethodPost,
			body:       `{"name":"Kale","type":"mushroom","rarity":"mythic","description":"leafy","expectedYield":5,"imageUrl":"` + strings.Repeat("a", 2049) + `"}`,
			wantFields: []string{"type", "rarity", "imageUrl"},
		},
		{
			name:   "edit with harvest before planting",
			method: http.MethodPut,
			body: `{"name":"Golden Corn","type":"grain","rarity":"rare","description":" ","expectedYield":101,` +
				`"plantedAt":"2025-06-10T09:00:00Z","harvestAt":"2025-06-01T09:00:00Z"}`,
			wantFields: []string{"description", "expectedYield", "harvestAt"},
		},
		{
			name:       "edit missing planted date",
			method:     http.MethodPut,
			body:       `{"name":"Golden Corn","type":"grain","rarity":"rare","description":"sweet","expectedYield":8,"harvestAt":"2025-06-01T09:00:00Z"}`,
			wantFields: []string{"plantedAt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newRealCropHandler(t)
			w := httptest.NewRecorder()

			if tt.method == http.MethodPost {
				h.HandlePlantCrop(w, httptest.NewRequest(http.MethodPost, "/crops", strings.NewReader(tt.body)))
			} else {
				req := withURLParam(httptest.NewRequest(http.MethodPut, "/crops/1", strings.NewReader(tt.body)), handler.PathParamCropID, "1")
				h.HandleEditCrop(w, req)
			}

			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, handler.ErrMsgInvalidRequestSummary, resp.Error)

			got := make([]string, 0, len(resp.Fields))
			for field := range resp.Fields {
				got = append(got, field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestCropHandler_PlantValidCropWithRealService(t *testing.T) {
	h := newRealCropHandler(t)
	w := httptest.NewRecorder()

	body := `{"name":" Sweet Basil ","type":"herb","rarity":"common","description":"fragrant","expectedYield":3}`
	h.HandlePlantCrop(w, httptest.NewRequest(http.MethodPost, "/crops", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Sweet Basil"`)
}
