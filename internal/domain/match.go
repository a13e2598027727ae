package domain

// MatchedProduct is the display form of the recommended product
type MatchedProduct struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	BuyLink     string  `json:"buyLink"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
}

// CropDetails summarizes the resolved crop in a match result
type CropDetails struct {
	ID            string   `json:"id"`
	Type          CropType `json:"type"`
	MaturityLevel int      `json:"maturityLevel"`
	IsReady       bool     `json:"isReady"`
	Rarity        Rarity   `json:"rarity"`
}

// MatchResult is the response of the crop-to-product matcher
type MatchResult struct {
	Crop           string         `json:"crop"`
	MatchedProduct MatchedProduct `json:"matchedProduct"`
	CropDetails    CropDetails    `json:"cropDetails"`
	AllMatches     int            `json:"allMatches"`
}
