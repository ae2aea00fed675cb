package usecase

import (
	"strings"

	"github.com/partscout/backend/internal/domain"
)

// BuildQuery maps a (category, product) pair to the marketplace search
// query: the product name (expanded through the synonym table when an
// entry exists) followed by the category's refinement keywords joined by
// spaces. A category with no refinement entry yields no suffix.
//
// Pure and deterministic; same inputs always produce the same query.
func BuildQuery(category, product string) string {
	if expanded, ok := domain.Synonyms[product]; ok {
		product = expanded
	}
	refiners := strings.Join(domain.RefinementKeywords[category], " ")
	return strings.TrimSpace(product + " " + refiners)
}
