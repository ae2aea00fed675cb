package usecase

import (
	"context"
	"fmt"

	"github.com/partscout/backend/internal/domain"
)

// SearchSource is the live ResultSource: it builds the query for a
// category, fetches raw listings through the marketplace client, and runs
// them through the extraction pipeline.
type SearchSource struct {
	client domain.SearchClient
}

// NewSearchSource creates a live result source backed by the given client.
func NewSearchSource(client domain.SearchClient) *SearchSource {
	return &SearchSource{client: client}
}

// FetchResults implements domain.ResultSource. A fetch failure is wrapped
// in domain.ErrSearchFailed so the ranking engine can recover at the
// category boundary; per-record failures never surface as errors.
func (s *SearchSource) FetchResults(ctx context.Context, category, product string, limit int) ([]domain.Result, domain.SkipStats, error) {
	query := BuildQuery(category, product)

	records, err := s.client.SearchListings(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}

	results, skips := ExtractResults(category, product, records, limit)
	return results, skips, nil
}
