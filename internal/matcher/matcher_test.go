package matcher

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

func goldenCorn() domain.Crop {
	return domain.Crop{
		ID:            "crop-1",
		Name:          "Golden Corn",
		Type:          domain.CropTypeGrain,
		NFTTokenID:    "NFT042",
		MaturityLevel: 66.6,
		Rarity:        domain.RarityRare,
	}
}

func cherryTomato() domain.Crop {
	return domain.Crop{
		ID:            "crop-2",
		Name:          "Cherry Tomato",
		Type:          domain.CropTypeVegetable,
		NFTTokenID:    "NFT001",
		MaturityLevel: 100,
		IsReady:       true,
		Rarity:        domain.RarityCommon,
	}
}

func TestMatch_GoldenCornTypeOnlyRelation(t *testing.T) {
	products := []domain.Product{
		{ID: "rice", Name: "Jasmine Rice", Description: "Long grain", Price: 12900, RelatedCropTypes: []string{"grain"}},
		{ID: "trowel", Name: "Trowel", Description: "Hand tool", Price: 9900, RelatedCropTypes: []string{}},
	}

	res, err := Match("golden corn", []domain.Crop{goldenCorn()}, products)
	require.NoError(t, err)

	assert.Equal(t, 1, res.AllMatches)
	assert.Equal(t, "Golden Corn #042", res.Crop)
	assert.Equal(t, "Jasmine Rice", res.MatchedProduct.Title)
	assert.Equal(t, "12,900 KRW", res.MatchedProduct.Price)
	assert.Equal(t, domain.ShopProductURLBase+"rice", res.MatchedProduct.BuyLink)
	assert.Equal(t, domain.CropDetails{
		ID:            "crop-1",
		Type:          domain.CropTypeGrain,
		MaturityLevel: 67,
		IsReady:       false,
		Rarity:        domain.RarityRare,
	}, res.CropDetails)
}

func TestMatch_TokenQueryIgnoresName(t *testing.T) {
	crops := []domain.Crop{goldenCorn(), cherryTomato()}
	products := []domain.Product{
		{ID: "p1", Name: "Salsa Kit", RelatedCropTypes: []string{"vegetable"}, ProductURL: "https://example.com/salsa", InStock: true, Rating: 4.5},
	}

	res, err := Match("nft001", crops, products)
	require.NoError(t, err)
	assert.Equal(t, "Cherry Tomato #001", res.Crop)
	assert.Equal(t, "crop-2", res.CropDetails.ID)
	assert.True(t, res.CropDetails.IsReady)
	assert.Equal(t, 100, res.CropDetails.MaturityLevel)
	assert.Equal(t, "https://example.com/salsa", res.MatchedProduct.BuyLink)
	assert.True(t, res.MatchedProduct.InStock)
	assert.Equal(t, 4.5, res.MatchedProduct.Rating)
}

func TestMatch_CropResolution(t *testing.T) {
	crops := []domain.Crop{goldenCorn(), cherryTomato()}
	products := []domain.Product{
		{ID: "g", Name: "Corn Meal", RelatedCropTypes: []string{"grain"}},
		{ID: "v", Name: "Salad Bowl", RelatedCropTypes: []string{"vegetable"}},
	}

	tests := []struct {
		name   string
		query  string
		wantID string
	}{
		{"name contains query", "corn", "crop-1"},
		{"case-insensitive", "CHERRY", "crop-2"},
		{"query contains name", "I want some cherry tomato please", "crop-2"},
		{"first match in collection order wins", "o", "crop-1"},
		{"token equality", "NFT042", "crop-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resolve(tt.query, crops, products)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, out.Crop.ID)
		})
	}
}

func TestMatch_TokenMustEqualExactly(t *testing.T) {
	_, err := Match("NFT04", []domain.Crop{goldenCorn()}, nil)
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
}

func TestMatch_NameMentionCountsInTierOne(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "Fertilizer", RelatedCropTypes: []string{"fruit"}},
		{ID: "b", Name: "Popcorn Maker", Description: "For golden corn kernels"},
		{ID: "c", Name: "Grain Mill", RelatedCropTypes: []string{"grain"}},
	}

	out, err := Resolve("Golden Corn", []domain.Crop{goldenCorn()}, products)
	require.NoError(t, err)
	assert.Equal(t, tierRelated, out.Tier)
	assert.Equal(t, 2, out.Result.AllMatches)
	assert.Equal(t, "Popcorn Maker", out.Result.MatchedProduct.Title)
}

func TestMatch_NoProduct(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "Apple Peeler", Description: "Kitchen tool", RelatedCropTypes: []string{"fruit"}},
	}

	_, err := Match("corn", []domain.Crop{goldenCorn()}, products)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoProductMatch)
	assert.Contains(t, err.Error(), "Golden Corn")
}

func TestMatch_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		crops []domain.Crop
		want  error
	}{
		{"empty query", "", []domain.Crop{goldenCorn()}, domain.ErrValidation},
		{"blank query", "   ", []domain.Crop{goldenCorn()}, domain.ErrValidation},
		{"no crops", "corn", nil, domain.ErrCropNotFound},
		{"unknown crop", "kale", []domain.Crop{goldenCorn()}, domain.ErrCropNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Match(tt.query, tt.crops, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	var verr *domain.ValidationError
	_, err := Match("", nil, nil)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgQueryRequired, verr.Fields["query"])
}

func TestMatch_Deterministic(t *testing.T) {
	crops := []domain.Crop{goldenCorn(), cherryTomato()}
	products := []domain.Product{
		{ID: "1", Name: "Corn Meal", Price: 3490, RelatedCropTypes: []string{"grain"}},
		{ID: "2", Name: "Corn Chips", Price: 2000},
	}

	first, err := Match("corn", crops, products)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Match("corn", crops, products)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCropLabel(t *testing.T) {
	assert.Equal(t, "Basil", CropLabel(domain.Crop{Name: "Basil"}))
	assert.Equal(t, "Basil #777", CropLabel(domain.Crop{Name: "Basil", NFTTokenID: "NFT777"}))
	assert.Equal(t, "Basil #custom", CropLabel(domain.Crop{Name: "Basil", NFTTokenID: "custom"}))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0, "0 KRW"},
		{990, "990 KRW"},
		{4990, "4,990 KRW"},
		{1250000, "1,250,000 KRW"},
		{4990.5, "4,990.5 KRW"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.price), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price))
		})
	}
}

func BenchmarkMatch(b *testing.B) {
	crops := make([]domain.Crop, 0, 200)
	for i := 0; i < 200; i++ {
		crops = append(crops, domain.Crop{
			ID:         fmt.Sprintf("crop-%d", i),
			Name:       fmt.Sprintf("Crop Variety %d", i),
			Type:       domain.ValidCropTypes[i%len(domain.ValidCropTypes)],
			NFTTokenID: fmt.Sprintf("NFT%03d", i),
		})
	}
	products := make([]domain.Product, 0, 500)
	for i := 0; i < 500; i++ {
		products = append(products, domain.Product{
			ID:               fmt.Sprintf("p-%d", i),
			Name:             fmt.Sprintf("Product %d", i),
			Description:      "Garden supply",
			Price:            float64(1000 + i),
			RelatedCropTypes: []string{string(domain.ValidCropTypes[i%len(domain.ValidCropTypes)])},
		})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Match("NFT199", crops, products); err != nil {
			b.Fatal(err)
		}
	}
}
