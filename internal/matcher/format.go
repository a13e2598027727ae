package matcher

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// FormatPrice renders a price with Korean digit grouping and the KRW suffix,
// e.g. 12900 -> "12,900 KRW". Up to three fraction digits are kept.
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.Korean)
	return p.Sprintf("%v %s", number.Decimal(price, number.MaxFractionDigits(3)), domain.PriceCurrencySuffix)
}

// CropLabel is "{name} #{token}" with the first "NFT" removed from the token,
// or the bare name for crops without a token.
func CropLabel(c domain.Crop) string {
	if c.NFTTokenID == "" {
		return c.Name
	}
	return c.Name + " #" + strings.Replace(c.NFTTokenID, domain.NFTTokenPrefix, "", 1)
}

// BuyLink prefers the retailer URL and falls back to the shop page
func BuyLink(p domain.Product) string {
	if p.ProductURL != "" {
		return p.ProductURL
	}
	return domain.ShopProductURLBase + p.ID
}
