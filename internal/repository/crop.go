package repository

import (
	"context"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// CropStore is the persistence collaborator for crops.
// ListCrops returns the merged view: baseline records with overrides applied,
// followed by user-created records. PutCrop and DeleteCrop are idempotent by id.
type CropStore interface {
	ListCrops(ctx context.Context) ([]domain.Crop, error)
	PutCrop(ctx context.Context, crop domain.Crop) error
	DeleteCrop(ctx context.Context, id string) error
}
