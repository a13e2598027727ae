package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// catalogFile is the on-disk YAML layout
type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

type productRules struct {
	ID       string  `validate:"required"`
	Name     string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
	Rating   float64 `validate:"gte=0,lte=5"`
	Retailer string  `validate:"oneof=walmart amazon target"`
}

// FileCatalog serves products from a YAML file. The parsed file is cached for
// ttl; concurrent reloads after expiry share one read.
type FileCatalog struct {
	path     string
	cache    *expirable.LRU[string, []domain.Product]
	group    singleflight.Group
	validate *validator.Validate
}

// NewFileCatalog creates a catalog backed by path. A zero ttl uses DefaultTTL.
func NewFileCatalog(path string, ttl time.Duration) *FileCatalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FileCatalog{
		path:     path,
		cache:    expirable.NewLRU[string, []domain.Product](cacheSize, nil, ttl),
		validate: validator.New(),
	}
}

// ListProducts returns a copy of the catalog in file order
func (c *FileCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if products, ok := c.cache.Get(cacheKeyProducts); ok {
		return cloneProducts(products), nil
	}

	v, err, _ := c.group.Do(cacheKeyProducts, func() (interface{}, error) {
		if products, ok := c.cache.Get(cacheKeyProducts); ok {
			return products, nil
		}
		products, err := c.load()
		if err != nil {
			return nil, err
		}
		c.cache.Add(cacheKeyProducts, products)
		logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", c.path, "products", len(products))
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneProducts(v.([]domain.Product)), nil
}

// cloneProducts keeps callers from writing into the cached slice
func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

// Invalidate forces the next ListProducts to re-read the file
func (c *FileCatalog) Invalidate() {
	c.cache.Purge()
}

func (c *FileCatalog) load() ([]domain.Product, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", c.path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", c.path, err)
	}

	seen := make(map[string]bool, len(file.Products))
	for i, p := range file.Products {
		if err := c.validate.Struct(productRules{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Rating:   p.Rating,
			Retailer: string(p.Retailer),
		}); err != nil {
			return nil, fmt.Errorf("invalid product #%d (%q) in %s: %w", i, p.ID, c.path, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %q in %s", p.ID, c.path)
		}
		seen[p.ID] = true
		if file.Products[i].RelatedCropTypes == nil {
			file.Products[i].RelatedCropTypes = []string{}
		}
	}
	return file.Products, nil
}
