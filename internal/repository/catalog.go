package repository

import (
	"context"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// ProductCatalog provides read-only product reference data
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
