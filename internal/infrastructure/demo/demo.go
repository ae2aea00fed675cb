package demo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/partscout/backend/internal/domain"
)

// demoModels are the synthetic listings produced per category, cheapest
// first so the ranked table has a stable, predictable winner.
var demoModels = []struct {
	suffix string
	price  string
}{
	{" – Modelo A", "R$ 999,00"},
	{" – Modelo B", "R$ 1.149,00"},
	{" – Modelo C", "R$ 1.199,00"},
}

// Source is the demo-data collaborator: a ResultSource returning a small
// fixed sequence of results per category, used when no live search is
// configured. Output shape matches the live path so the ranking engine
// cannot tell them apart.
type Source struct {
	searchBaseURL string
}

// NewSource creates a demo source. baseURL is only used to build
// plausible outbound search links.
func NewSource(baseURL string) *Source {
	return &Source{searchBaseURL: baseURL}
}

// FetchResults implements domain.ResultSource.
func (s *Source) FetchResults(_ context.Context, category, product string, limit int) ([]domain.Result, domain.SkipStats, error) {
	link := fmt.Sprintf("%s/s?k=%s", s.searchBaseURL, url.QueryEscape(product))

	var results []domain.Result
	for _, model := range demoModels {
		if len(results) >= limit {
			break
		}
		results = append(results, domain.Result{
			Category: category,
			Store:    domain.StoreAmazon,
			Product:  product + model.suffix,
			Price:    model.price,
			Link:     link,
		})
	}
	return results, nil, nil
}
