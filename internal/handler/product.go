package handler

import (
	"net/http"

	"github.com/osse101/NoriFarm_Go/internal/catalog"
	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// ProductHandler serves the read-only product catalog
type ProductHandler struct {
	catalogSvc catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogSvc catalog.Service) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc}
}

// HandleSearchProducts searches the catalog
// @Summary Search products
// @Description Case-insensitive name/description search with an optional category filter
// @Tags products
// @Produce json
// @Param q query string false "Search text"
// @Param category query string false "Category"
// @Success 200 {array} domain.Product
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	query := GetOptionalQueryParam(r, QueryParamQuery, "")
	category := GetOptionalQueryParam(r, QueryParamCategory, "")

	products, err := h.catalogSvc.Search(r.Context(), query, category)
	if err != nil {
		respondServiceError(w, r, "Search products", err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// HandleRecommendations returns products suggested for a crop type
// @Summary Product recommendations
// @Tags products
// @Produce json
// @Param type query string true "Crop type"
// @Success 200 {object} domain.Recommendation
// @Failure 400 {object} ErrorResponse
// @Router /products/recommendations [get]
func (h *ProductHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	cropType, ok := GetQueryParam(r, w, QueryParamType)
	if !ok {
		return
	}

	rec, err := h.catalogSvc.Recommend(r.Context(), domain.CropType(cropType))
	if err != nil {
		respondServiceError(w, r, "Recommend products", err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
