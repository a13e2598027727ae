package domain

import "time"

// Crop lifecycle limits
const (
	MinExpectedYield  = 1
	MaxExpectedYield  = 100
	MinGrowthDays     = 1
	MaxGrowthDays     = 1500
	MaxMaturityLevel  = 100.0
	HarvestUserID     = "1"
	NFTTokenPrefix    = "NFT"
	HarvestIDPrefix   = "harvest_"
	GrowthDurationDay = 24 * time.Hour
)

// Harvest randomness bounds
const (
	YieldVarianceRange = 2.0 // yield = expected + uniform(-1, 1)
	MinQualityScore    = 80.0
	QualityScoreRange  = 20.0
)

// DefaultGrowthDays is the growth time used when a plant request omits one
var DefaultGrowthDays = map[CropType]int{
	CropTypeVegetable: 75,
	CropTypeFruit:     120,
	CropTypeGrain:     100,
	CropTypeHerb:      45,
}

// Matcher display constants
const (
	PriceCurrencySuffix = "KRW"
	ShopProductURLBase  = "https://norifarm-shop.com/product/"
)

// Catalog recommendation constants
const (
	RecommendationCategoryRelated = "related"
	RecommendationReasonFormat    = "Perfect for your %s growing journey"
)

// Cart constants
const (
	CartTaxRate = "0.08"
)

// Image upload constants
const (
	MaxImageSize        = 5 << 20
	ImageFilenamePrefix = "crop_"
)

// AllowedImageTypes lists accepted image content types
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ValidCropTypes lists crop types in display order
var ValidCropTypes = []CropType{CropTypeVegetable, CropTypeFruit, CropTypeGrain, CropTypeHerb}

// ValidRarities lists rarities in ascending order
var ValidRarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// DefaultCropImageURL is used when a crop is planted without an image
const DefaultCropImageURL = "/placeholder.svg?height=200&width=200"
