package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/handler"
	"github.com/osse101/NoriFarm_Go/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testAPIKey = "farm-key"

type routerDeps struct {
	crops   *mocks.MockCropService
	matcher *mocks.MockMatchService
	catalog *mocks.MockCatalogService
	cart    *mocks.MockCartService
	images  *mocks.MockImageStore
}

func newTestRouter(t *testing.T, uploadDir string) (http.Handler, routerDeps) {
	t.Helper()
	deps := routerDeps{
		crops:   mocks.NewMockCropService(t),
		matcher: mocks.NewMockMatchService(t),
		catalog: mocks.NewMockCatalogService(t),
		cart:    mocks.NewMockCartService(t),
		images:  mocks.NewMockImageStore(t),
	}
	router := NewRouter(Options{
		APIKey:        testAPIKey,
		UploadDir:     uploadDir,
		UploadBaseURL: "/uploads",
		ReadyChecks: map[string]handler.HealthChecker{
			"noop": handler.HealthCheckFunc(func(context.Context) error { return nil }),
		},
	}, Services{
		Crops:   deps.crops,
		Matcher: deps.matcher,
		Catalog: deps.catalog,
		Cart:    deps.cart,
		Images:  deps.images,
	})
	return router, deps
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, "")

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CropRoutes(t *testing.T) {
	router, deps := newTestRouter(t, "")

	deps.crops.On("ListByStatus", mock.Anything, domain.CropStatusReady).
		Return([]domain.Crop{{ID: "1", Name: "Corn"}}, nil).Once()
	deps.crops.On("Get", mock.Anything, "1").Return(&domain.Crop{ID: "1", Name: "Corn"}, nil).Once()
	deps.crops.On("Remove", mock.Anything, "2").Return(nil).Once()
	deps.crops.On("Harvest", mock.Anything, "1").
		Return(&domain.HarvestEvent{ID: "h1", CropID: "1", Yield: 8}, nil).Once()

	rec := do(t, router, http.MethodGet, "/api/v1/crops?status=ready", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var crops []domain.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crops))
	assert.Len(t, crops, 1)

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/v1/crops/1", "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, "/api/v1/crops/2", "").Code)

	rec = do(t, router, http.MethodPost, "/api/v1/crops/1/harvest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cropId":"1"`)
}

func TestRouter_MatchProductAndCartRoutes(t *testing.T) {
	router, deps := newTestRouter(t, "")

	deps.matcher.On("Match", mock.Anything, "corn").Return(&domain.MatchResult{Crop: "Corn", AllMatches: 1}, nil).Once()
	deps.catalog.On("Recommend", mock.Anything, domain.CropTypeGrain).
		Return(&domain.Recommendation{CropType: domain.CropTypeGrain}, nil).Once()
	deps.cart.On("Clear", mock.Anything, "u1").Return(&domain.CartSummary{Cart: domain.Cart{UserID: "u1"}}, nil).Once()

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/v1/match?q=corn", "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/v1/products/recommendations?type=grain", "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, "/api/v1/cart?user_id=u1", "").Code)
}

func TestRouter_JSONBodyLimit(t *testing.T) {
	router, _ := newTestRouter(t, "")

	body := `{"query":"` + strings.Repeat("a", MaxJSONBodyBytes) + `"}`
	rec := do(t, router, http.MethodPost, "/api/v1/match", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_EventsDisabledWithoutFeed(t *testing.T) {
	router, _ := newTestRouter(t, "")
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/v1/events", "").Code)
}

func TestRouter_ServesUploads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crop_1.png"), []byte("png-bytes"), 0o644))
	router, _ := newTestRouter(t, dir)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/crop_1.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
