package domain

// StoreAmazon is the source label attached to results extracted from
// Amazon.com.br search pages.
const StoreAmazon = "Amazon"

// ListingRecord represents one raw search-result entry as returned by the
// marketplace client, before normalization. Any field may be empty.
type ListingRecord struct {
	Title string
	// PriceCandidates holds raw price texts in priority order; the
	// extractor takes the first non-empty one.
	PriceCandidates []string
	Link            string
}

// Result is a normalized, comparison-ready listing for one category.
type Result struct {
	Category string `json:"category"`
	Store    string `json:"store"`
	Product  string `json:"product"`
	// Price is the canonical display string ("R$ 1.199,00"). Empty when
	// the raw price could not be normalized.
	Price string `json:"price,omitempty"`
	// PriceNum is the comparable numeric value, nil when the display
	// price is unparseable. Results without it stay in the full table
	// but are excluded from minimum-price ranking.
	PriceNum *float64 `json:"priceNum,omitempty"`
	Link     string   `json:"link"`
}

// SkipReason classifies why a listing record was dropped during extraction.
type SkipReason string

const (
	SkipNoTitle    SkipReason = "no_title"
	SkipNoPrice    SkipReason = "no_price"
	SkipIrrelevant SkipReason = "irrelevant"
)

// SkipStats aggregates per-record skips by reason for one or more searches.
type SkipStats map[SkipReason]int

// Merge adds the counts from other into s.
func (s SkipStats) Merge(other SkipStats) {
	for reason, n := range other {
		s[reason] += n
	}
}

// Total returns the number of skipped records across all reasons.
func (s SkipStats) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Comparison is the output of one pricing run.
type Comparison struct {
	// Rows is the full table, sorted ascending by category then numeric
	// price, with unparseable prices after any numeric value.
	Rows []Result `json:"rows"`
	// Best holds the minimum-price result per category, in the same
	// category order as Rows. Categories where every result is
	// unparseable contribute no entry.
	Best []Result `json:"best"`
	// Warnings maps a category name to the fetch failure that made it
	// contribute zero results.
	Warnings map[string]string `json:"warnings,omitempty"`
	// Skipped counts listing records dropped during extraction.
	Skipped SkipStats `json:"skipped,omitempty"`
}
