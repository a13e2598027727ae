package handler

import (
	"net/http"

	"github.com/osse101/NoriFarm_Go/internal/cart"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// AddCartItemRequest is the body of POST /cart/items
type AddCartItemRequest struct {
	UserID    string `json:"user_id" validate:"required,max=100"`
	ProductID string `json:"product_id" validate:"required,max=64"`
	Quantity  int    `json:"quantity" validate:"min=1,max=999"`
}

// UpdateCartItemRequest is the body of PUT /cart/items/{productID}.
// A quantity of zero removes the line.
type UpdateCartItemRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"max=999"`
}

// CartHandler handles shopping cart HTTP requests
type CartHandler struct {
	cartSvc cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartSvc cart.Service) *CartHandler {
	return &CartHandler{cartSvc: cartSvc}
}

// HandleGetCart returns a user's cart with totals
// @Summary View cart
// @Tags cart
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.CartSummary
// @Failure 400 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, QueryParamUserID)
	if !ok {
		return
	}

	summary, err := h.cartSvc.Get(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get cart", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleAddItem adds a product to a cart, merging with an existing line
// @Summary Add cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddCartItemRequest true "Item to add"
// @Success 200 {object} domain.CartSummary
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown product"
// @Router /cart/items [post]
func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add cart item"); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()),
		"user_id", req.UserID, "product_id", req.ProductID, "quantity", req.Quantity)

	summary, err := h.cartSvc.AddItem(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Add cart item", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleUpdateItem sets the quantity of a cart line
// @Summary Update cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param request body UpdateCartItemRequest true "New quantity"
// @Success 200 {object} domain.CartSummary
// @Failure 404 {object} ErrorResponse "Product not in cart"
// @Router /cart/items/{productID} [put]
func (h *CartHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := GetPathParam(r, w, PathParamProductID)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update cart item"); err != nil {
		return
	}

	summary, err := h.cartSvc.UpdateQuantity(r.Context(), req.UserID, productID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Update cart item", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleRemoveItem removes a product line from a cart
// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param productID path string true "Product ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.CartSummary
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := GetPathParam(r, w, PathParamProductID)
	if !ok {
		return
	}
	userID, ok := GetQueryParam(r, w, QueryParamUserID)
	if !ok {
		return
	}

	summary, err := h.cartSvc.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		respondServiceError(w, r, "Remove cart item", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleClearCart empties a cart
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.CartSummary
// @Router /cart [delete]
func (h *CartHandler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, QueryParamUserID)
	if !ok {
		return
	}

	summary, err := h.cartSvc.Clear(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Clear cart", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
