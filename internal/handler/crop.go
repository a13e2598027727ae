package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/NoriFarm_Go/internal/crop"
	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// PlantCropRequest is the body of POST /crops.
// An omitted growthDuration selects the default for the crop type.
// The crop service validates every field and reports all failures at once.
type PlantCropRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"imageUrl"`
	ExpectedYield  float64 `json:"expectedYield"`
	GrowthDuration *int    `json:"growthDuration"`
	Rarity         string  `json:"rarity"`
}

// EditCropRequest is the body of PUT /crops/{cropID}. Every field is replaced.
type EditCropRequest struct {
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	ExpectedYield float64   `json:"expectedYield"`
	ActualYield   *float64  `json:"actualYield"`
	Rarity        string    `json:"rarity"`
	PlantedAt     time.Time `json:"plantedAt"`
	HarvestAt     time.Time `json:"harvestAt"`
	NFTTokenID    string    `json:"nftTokenId"`
}

// CropHandler handles crop lifecycle HTTP requests
type CropHandler struct {
	cropSvc crop.Service
}

// NewCropHandler creates a new crop handler
func NewCropHandler(cropSvc crop.Service) *CropHandler {
	return &CropHandler{cropSvc: cropSvc}
}

// HandleListCrops lists crops with freshly computed maturity
// @Summary List crops
// @Description Lists every crop; status=ready or status=growing filters the list
// @Tags crops
// @Produce json
// @Param status query string false "ready or growing"
// @Success 200 {array} domain.Crop
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /crops [get]
func (h *CropHandler) HandleListCrops(w http.ResponseWriter, r *http.Request) {
	status := domain.CropStatus(GetOptionalQueryParam(r, QueryParamStatus, ""))
	switch status {
	case domain.CropStatusAll, domain.CropStatusReady, domain.CropStatusGrowing:
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidStatus, status))
		return
	}

	crops, err := h.cropSvc.ListByStatus(r.Context(), status)
	if err != nil {
		respondServiceError(w, r, "List crops", err)
		return
	}
	respondJSON(w, http.StatusOK, crops)
}

// HandleGetCrop returns one crop
// @Summary Get crop
// @Tags crops
// @Produce json
// @Param cropID path string true "Crop ID"
// @Success 200 {object} domain.Crop
// @Failure 404 {object} ErrorResponse
// @Router /crops/{cropID} [get]
func (h *CropHandler) HandleGetCrop(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamCropID)
	if !ok {
		return
	}

	c, err := h.cropSvc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get crop", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandlePlantCrop plants a new crop in the user collection
// @Summary Plant crop
// @Tags crops
// @Accept json
// @Produce json
// @Param request body PlantCropRequest true "Crop to plant"
// @Success 201 {object} domain.Crop
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /crops [post]
func (h *CropHandler) HandlePlantCrop(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantCropRequest
	if err := DecodeRequest(r, w, &req, "Plant crop"); err != nil {
		return
	}
	LogRequestFields(log, "name", req.Name, "type", req.Type, "rarity", req.Rarity)

	c, err := h.cropSvc.Plant(r.Context(), domain.PlantInput{
		Name:           req.Name,
		Type:           domain.CropType(req.Type),
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		ExpectedYield:  req.ExpectedYield,
		GrowthDuration: req.GrowthDuration,
		Rarity:         domain.Rarity(req.Rarity),
	})
	if err != nil {
		respondServiceError(w, r, "Plant crop", err)
		return
	}

	log.Info("Crop planted", "crop_id", c.ID, "harvest_at", c.HarvestAt)
	respondJSON(w, http.StatusCreated, c)
}

// HandleEditCrop replaces the mutable fields of a crop
// @Summary Edit crop
// @Tags crops
// @Accept json
// @Produce json
// @Param cropID path string true "Crop ID"
// @Param request body EditCropRequest true "New crop fields"
// @Success 200 {object} domain.Crop
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /crops/{cropID} [put]
func (h *CropHandler) HandleEditCrop(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamCropID)
	if !ok {
		return
	}

	var req EditCropRequest
	if err := DecodeRequest(r, w, &req, "Edit crop"); err != nil {
		return
	}

	c, err := h.cropSvc.Edit(r.Context(), id, domain.CropFields{
		Name:          req.Name,
		Type:          domain.CropType(req.Type),
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		ExpectedYield: req.ExpectedYield,
		ActualYield:   req.ActualYield,
		Rarity:        domain.Rarity(req.Rarity),
		PlantedAt:     req.PlantedAt,
		HarvestAt:     req.HarvestAt,
		NFTTokenID:    req.NFTTokenID,
	})
	if err != nil {
		respondServiceError(w, r, "Edit crop", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleRemoveCrop deletes a crop
// @Summary Remove crop
// @Tags crops
// @Produce json
// @Param cropID path string true "Crop ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /crops/{cropID} [delete]
func (h *CropHandler) HandleRemoveCrop(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamCropID)
	if !ok {
		return
	}

	if err := h.cropSvc.Remove(r.Context(), id); err != nil {
		respondServiceError(w, r, "Remove crop", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCropRemovedSuccess})
}

// HandleHarvestCrop harvests a ready crop and starts its next growth cycle
// @Summary Harvest crop
// @Tags crops
// @Produce json
// @Param cropID path string true "Crop ID"
// @Success 200 {object} domain.HarvestEvent
// @Failure 409 {object} ErrorResponse "Crop is not ready"
// @Failure 500 {object} ErrorResponse
// @Router /crops/{cropID}/harvest [post]
func (h *CropHandler) HandleHarvestCrop(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamCropID)
	if !ok {
		return
	}

	evt, err := h.cropSvc.Harvest(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Harvest crop", err)
		return
	}

	logger.FromContext(r.Context()).Info("Crop harvested",
		"crop_id", id,
		"yield", evt.Yield,
		"quality", evt.QualityScore)
	respondJSON(w, http.StatusOK, evt)
}
