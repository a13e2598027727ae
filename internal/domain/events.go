package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "crop.planted")
const (
	// EventTypeCropPlanted is published after a new crop is committed to the store
	EventTypeCropPlanted = "crop.planted"

	// EventTypeCropHarvested is published after a harvest resets a crop
	EventTypeCropHarvested = "crop.harvested"

	// EventTypeCropEdited is published after a crop edit is committed
	EventTypeCropEdited = "crop.edited"

	// EventTypeCropRemoved is published after a crop is deleted
	EventTypeCropRemoved = "crop.removed"

	// EventTypeMatchPerformed is published for every matcher query, successful or not
	EventTypeMatchPerformed = "match.performed"
)

// CropPayload is the payload of crop.planted, crop.edited and crop.removed
type CropPayload struct {
	CropID   string   `json:"crop_id"`
	CropType CropType `json:"crop_type"`
	Rarity   Rarity   `json:"rarity"`
}

// HarvestPayload is the payload of crop.harvested
type HarvestPayload struct {
	CropID       string   `json:"crop_id"`
	CropType     CropType `json:"crop_type"`
	Yield        float64  `json:"yield"`
	QualityScore float64  `json:"quality_score"`
}

// MatchPayload is the payload of match.performed
type MatchPayload struct {
	Query   string `json:"query"`
	Outcome string `json:"outcome"`
	CropID  string `json:"crop_id,omitempty"`
	Tier    int    `json:"tier,omitempty"`
}

// Match outcomes reported in MatchPayload
const (
	MatchOutcomeMatched   = "matched"
	MatchOutcomeNoCrop    = "no_crop"
	MatchOutcomeNoProduct = "no_product"
	MatchOutcomeInvalid   = "invalid"
)
