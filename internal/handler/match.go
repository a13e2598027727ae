package handler

import (
	"net/http"

	"github.com/osse101/NoriFarm_Go/internal/matcher"
)

// MatchRequest is the body of POST /match
type MatchRequest struct {
	Query string `json:"query"`
}

// MatchHandler serves the crop-to-product matcher
type MatchHandler struct {
	matchSvc matcher.Service
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchSvc matcher.Service) *MatchHandler {
	return &MatchHandler{matchSvc: matchSvc}
}

// HandleMatchPost matches a crop query from a JSON body
// @Summary Match crop to product
// @Description Resolves a crop by name or NFT token id and returns the best matching product
// @Tags match
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Crop query"
// @Success 200 {object} domain.MatchResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "No crop or no product matched"
// @Failure 500 {object} ErrorResponse
// @Router /match [post]
func (h *MatchHandler) HandleMatchPost(w http.ResponseWriter, r *http.Request) {
	// the matcher reports a blank query with its own field error
	var req MatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Match"); err != nil {
		return
	}
	h.match(w, r, req.Query)
}

// HandleMatchGet matches a crop query from ?q=
// @Summary Match crop to product
// @Tags match
// @Produce json
// @Param q query string true "Crop name or NFT token id"
// @Success 200 {object} domain.MatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /match [get]
func (h *MatchHandler) HandleMatchGet(w http.ResponseWriter, r *http.Request) {
	query, ok := GetQueryParam(r, w, QueryParamQuery)
	if !ok {
		return
	}
	h.match(w, r, query)
}

func (h *MatchHandler) match(w http.ResponseWriter, r *http.Request, query string) {
	result, err := h.matchSvc.Match(r.Context(), query)
	if err != nil {
		respondServiceError(w, r, "Match", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
