package catalog

import "time"

const (
	cacheKeyProducts = "products"
	cacheSize        = 8

	// DefaultTTL is how long a loaded catalog file is reused before re-reading
	DefaultTTL = 5 * time.Minute
)

// Log messages
const (
	LogMsgCatalogLoaded = "Product catalog loaded"
)
