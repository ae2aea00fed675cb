package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching serialized values
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SearchClient defines the interface for fetching raw search-result
// listings from the marketplace for a query string. Implementations must
// tolerate partial or absent fields per record.
type SearchClient interface {
	SearchListings(ctx context.Context, query string) ([]ListingRecord, error)
}

// ResultSource produces comparison-ready results for one category. The
// live implementation runs the search + extraction pipeline; the demo
// implementation returns fixed synthetic data with the same shape, so the
// ranking engine is agnostic to which one supplied it.
type ResultSource interface {
	FetchResults(ctx context.Context, category, product string, limit int) ([]Result, SkipStats, error)
}
