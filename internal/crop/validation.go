package crop

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
	return validate
}

// plantRules and editRules are the only validation crop input gets; the
// HTTP layer decodes and passes everything through.
type plantRules struct {
	Name           string  `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Type           string  `json:"type" validate:"required,oneof=vegetable fruit grain herb"`
	Description    string  `json:"description" validate:"required,max=1000"`
	ImageURL       string  `json:"imageUrl" validate:"max=2048"`
	Rarity         string  `json:"rarity" validate:"required,oneof=common rare epic legendary"`
	ExpectedYield  float64 `json:"expectedYield" validate:"gte=1,lte=100"`
	GrowthDuration int     `json:"growthDuration" validate:"gte=1,lte=1500"`
}

type editRules struct {
	Name          string   `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Type          string   `json:"type" validate:"required,oneof=vegetable fruit grain herb"`
	Description   string   `json:"description" validate:"required,max=1000"`
	ImageURL      string   `json:"imageUrl" validate:"max=2048"`
	Rarity        string   `json:"rarity" validate:"required,oneof=common rare epic legendary"`
	ExpectedYield float64  `json:"expectedYield" validate:"gte=1,lte=100"`
	ActualYield   *float64 `json:"actualYield" validate:"omitempty,gte=0"`
	NFTTokenID    string   `json:"nftTokenId" validate:"max=64"`
}

var requiredMessages = map[string]string{
	"name":        "Crop name is required",
	"type":        "Crop type is required",
	"description": "Description is required",
	"rarity":      "Rarity is required",
}

var invalidMessages = map[string]string{
	"type":           "Crop type must be one of vegetable, fruit, grain, herb",
	"rarity":         "Rarity must be one of common, rare, epic, legendary",
	"expectedYield":  fmt.Sprintf("Expected yield must be between %d and %d", domain.MinExpectedYield, domain.MaxExpectedYield),
	"growthDuration": fmt.Sprintf("Growth duration must be between %d and %d days", domain.MinGrowthDays, domain.MaxGrowthDays),
	"actualYield":    "Actual yield cannot be negative",
	"name":           "Crop name must be at most 100 characters on one line",
	"description":    "Description must be at most 1000 characters",
	"imageUrl":       "Image URL must be at most 2048 characters",
	"nftTokenId":     "NFT token id must be at most 64 characters",
}

// fieldErrors runs struct validation and returns field -> message for every failure
func fieldErrors(s interface{}) map[string]string {
	err := getValidator().Struct(s)
	if err == nil {
		return map[string]string{}
	}

	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["input"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		if fe.Tag() == "required" {
			out[field] = requiredMessages[field]
			continue
		}
		msg, ok := invalidMessages[field]
		if !ok {
			msg = "Invalid value"
		}
		out[field] = msg
	}
	return out
}

// validatePlant normalizes the input and returns the growth duration in days
func validatePlant(in *domain.PlantInput) (int, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	days := domain.DefaultGrowthDays[in.Type]
	if in.GrowthDuration != nil {
		days = *in.GrowthDuration
	} else if days == 0 {
		// unknown type; the type error is the one to report
		days = domain.MinGrowthDays
	}

	errs := fieldErrors(plantRules{
		Name:           in.Name,
		Type:           string(in.Type),
		Description:    in.Description,
		ImageURL:       in.ImageURL,
		Rarity:         string(in.Rarity),
		ExpectedYield:  in.ExpectedYield,
		GrowthDuration: days,
	})
	return days, domain.NewValidationError(errs)
}

func validateEdit(f *domain.CropFields) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.ImageURL = strings.TrimSpace(f.ImageURL)

	errs := fieldErrors(editRules{
		Name:          f.Name,
		Type:          string(f.Type),
		Description:   f.Description,
		ImageURL:      f.ImageURL,
		Rarity:        string(f.Rarity),
		ExpectedYield: f.ExpectedYield,
		ActualYield:   f.ActualYield,
		NFTTokenID:    f.NFTTokenID,
	})

	switch {
	case f.PlantedAt.IsZero():
		errs["plantedAt"] = "Planted date is required"
	case f.HarvestAt.IsZero():
		errs["harvestAt"] = "Harvest date is required"
	case !f.HarvestAt.After(f.PlantedAt):
		errs["harvestAt"] = "Harvest date must be after planted date"
	}
	return domain.NewValidationError(errs)
}
