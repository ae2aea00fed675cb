package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/partscout/backend/internal/domain"
)

// minKeywordLen excludes refinement keywords shorter than 3 runes from
// scoring; tokens like "m.2" stay in, noisy two-letter ones do not.
const minKeywordLen = 3

// RelevanceScore counts how many of the category's refinement keywords
// (of at least minKeywordLen runes) occur as substrings of the lowercase
// concatenation of the listing title and the search query.
//
// This is a heuristic precision signal, not a guarantee: unlucky phrasing
// produces false negatives and keyword stuffing produces false positives.
// Both are accepted trade-offs.
func RelevanceScore(category, title, query string) int {
	text := strings.ToLower(title + " " + query)
	score := 0
	for _, keyword := range domain.RefinementKeywords[category] {
		if utf8.RuneCountInString(keyword) < minKeywordLen {
			continue
		}
		if strings.Contains(text, keyword) {
			score++
		}
	}
	return score
}

// IsRelevant decides whether a listing is a plausible match for the
// category. Processor listings must name a manufacturer brand in the
// title itself, regardless of score; every relevant processor listing
// says "ryzen" or "intel". All other categories require a score above
// zero, so a category without refinement keywords rejects everything.
func IsRelevant(category, title, query string) bool {
	if category == domain.CategoryProcessor {
		lowerTitle := strings.ToLower(title)
		return strings.Contains(lowerTitle, "ryzen") || strings.Contains(lowerTitle, "intel")
	}
	return RelevanceScore(category, title, query) > 0
}
