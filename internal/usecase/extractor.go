package usecase

import (
	"github.com/partscout/backend/internal/domain"
)

// ExtractResults turns raw listing records into comparison-ready results
// for one category, capped at limit.
//
// Records are visited in the order supplied by the search client; that
// order bounds which records are considered when limit truncates the list
// and later becomes the ranking tie-break. A record that cannot produce a
// result is counted under a skip reason instead of raising an error:
// missing title, no usable price candidate, or rejected by the relevance
// filter. The result is first-K-relevant in input order, not a top-K by
// any quality metric.
func ExtractResults(category, product string, records []domain.ListingRecord, limit int) ([]domain.Result, domain.SkipStats) {
	query := BuildQuery(category, product)
	skips := domain.SkipStats{}
	var results []domain.Result

	for _, record := range records {
		if record.Title == "" {
			skips[domain.SkipNoTitle]++
			continue
		}

		raw := firstNonEmpty(record.PriceCandidates)
		if raw == "" {
			skips[domain.SkipNoPrice]++
			continue
		}

		if !IsRelevant(category, record.Title, query) {
			skips[domain.SkipIrrelevant]++
			continue
		}

		// An unparseable raw price still produces a row; it just carries
		// no display price and stays out of the ranked table.
		price, _ := NormalizePriceText(raw)
		results = append(results, domain.Result{
			Category: category,
			Store:    domain.StoreAmazon,
			Product:  record.Title,
			Price:    price,
			Link:     record.Link,
		})
		if len(results) >= limit {
			break
		}
	}

	return results, skips
}

// firstNonEmpty returns the first non-empty candidate, or "".
func firstNonEmpty(candidates []string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
