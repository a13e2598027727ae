package domain

// Retailer identifies where a product is sold
type Retailer string

// Supported retailers
const (
	RetailerWalmart Retailer = "walmart"
	RetailerAmazon  Retailer = "amazon"
	RetailerTarget  Retailer = "target"
)

// Product is immutable catalog reference data
type Product struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Description      string   `json:"description" yaml:"description"`
	Price            float64  `json:"price" yaml:"price"`
	OriginalPrice    *float64 `json:"originalPrice,omitempty" yaml:"original_price,omitempty"`
	ImageURL         string   `json:"imageUrl" yaml:"image_url"`
	Category         string   `json:"category" yaml:"category"`
	Brand            string   `json:"brand" yaml:"brand"`
	Rating           float64  `json:"rating" yaml:"rating"`
	ReviewCount      int      `json:"reviewCount" yaml:"review_count"`
	InStock          bool     `json:"inStock" yaml:"in_stock"`
	Retailer         Retailer `json:"retailer" yaml:"retailer"`
	ProductURL       string   `json:"productUrl" yaml:"product_url"`
	RelatedCropTypes []string `json:"relatedCropTypes" yaml:"related_crop_types"`
}

// Clone returns a copy that shares no slices with p
func (p Product) Clone() Product {
	p.RelatedCropTypes = append([]string{}, p.RelatedCropTypes...)
	return p
}

// RelatesTo reports whether the product lists the crop type as related
func (p Product) RelatesTo(cropType CropType) bool {
	for _, t := range p.RelatedCropTypes {
		if t == string(cropType) {
			return true
		}
	}
	return false
}

// Recommendation groups catalog products suggested for a crop type
type Recommendation struct {
	CropType CropType  `json:"cropType"`
	Products []Product `json:"products"`
	Reason   string    `json:"reason"`
	Category string    `json:"category"`
}
