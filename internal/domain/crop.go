package domain

import "time"

// CropType classifies a crop for product matching and default growth time
type CropType string

// Supported crop types
const (
	CropTypeVegetable CropType = "vegetable"
	CropTypeFruit     CropType = "fruit"
	CropTypeGrain     CropType = "grain"
	CropTypeHerb      CropType = "herb"
)

// Rarity is the display tier of a crop
type Rarity string

// Supported rarities
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Crop is a planted crop. MaturityLevel and IsReady are derived from the
// timestamps and are recomputed on every read.
type Crop struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          CropType  `json:"type"`
	PlantedAt     time.Time `json:"plantedAt"`
	HarvestAt     time.Time `json:"harvestAt"`
	MaturityLevel float64   `json:"maturityLevel"`
	IsReady       bool      `json:"isReady"`
	NFTTokenID    string    `json:"nftTokenId,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	Description   string    `json:"description"`
	ExpectedYield float64   `json:"expectedYield"`
	ActualYield   *float64  `json:"actualYield,omitempty"`
	Rarity        Rarity    `json:"rarity"`
}

// GrowthDuration returns the planned time between planting and harvest
func (c Crop) GrowthDuration() time.Duration {
	return c.HarvestAt.Sub(c.PlantedAt)
}

// PlantInput is the caller-supplied data for planting a new crop.
// A nil GrowthDuration selects the default for the crop type.
type PlantInput struct {
	Name           string   `json:"name"`
	Type           CropType `json:"type"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	ExpectedYield  float64  `json:"expectedYield"`
	GrowthDuration *int     `json:"growthDuration,omitempty"` // days
	Rarity         Rarity   `json:"rarity"`
}

// CropFields holds every mutable crop field. Edit replaces all of them.
type CropFields struct {
	Name          string    `json:"name"`
	Type          CropType  `json:"type"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	ExpectedYield float64   `json:"expectedYield"`
	ActualYield   *float64  `json:"actualYield,omitempty"`
	Rarity        Rarity    `json:"rarity"`
	PlantedAt     time.Time `json:"plantedAt"`
	HarvestAt     time.Time `json:"harvestAt"`
	NFTTokenID    string    `json:"nftTokenId,omitempty"`
}

// FieldsOf extracts the mutable fields of a crop
func FieldsOf(c Crop) CropFields {
	return CropFields{
		Name:          c.Name,
		Type:          c.Type,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		ExpectedYield: c.ExpectedYield,
		ActualYield:   c.ActualYield,
		Rarity:        c.Rarity,
		PlantedAt:     c.PlantedAt,
		HarvestAt:     c.HarvestAt,
		NFTTokenID:    c.NFTTokenID,
	}
}

// CropStatus filters crop listings
type CropStatus string

// Crop listing filters
const (
	CropStatusAll     CropStatus = ""
	CropStatusReady   CropStatus = "ready"
	CropStatusGrowing CropStatus = "growing"
)
