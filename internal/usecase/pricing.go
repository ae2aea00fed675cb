package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/partscout/backend/internal/domain"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// maxResultLimit caps how many results one category may contribute.
const maxResultLimit = 20

// PricingServiceConfig holds configuration for the pricing service
type PricingServiceConfig struct {
	CacheTTL           time.Duration
	DefaultResultLimit int
}

// PricingService is the catalog & ranking engine: it walks a build
// profile category by category, collects results from the configured
// source (live search or demo data), and derives the sorted full table
// plus the minimum-price result per category.
type PricingService struct {
	cache        domain.CacheRepository
	source       domain.ResultSource
	cacheTTL     time.Duration
	defaultLimit int
}

// NewPricingService creates a pricing service with dependencies. cache
// may be nil to disable result caching.
func NewPricingService(
	cache domain.CacheRepository,
	source domain.ResultSource,
	config PricingServiceConfig,
) *PricingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Minute
	}

	defaultLimit := config.DefaultResultLimit
	if defaultLimit <= 0 {
		defaultLimit = 10
	}

	return &PricingService{
		cache:        cache,
		source:       source,
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
	}
}

// Compare runs one pricing pass over the profile. Categories are
// processed sequentially in profile order. A category whose fetch fails
// contributes zero results and a warning keyed by category name;
// processing continues. When the aggregate ends up empty the run returns
// domain.ErrNoResults together with a report carrying the warnings, so
// the caller can render an explicit "no results" message instead of an
// empty table.
func (s *PricingService) Compare(ctx context.Context, profile domain.BuildProfile, limit int) (*domain.Comparison, error) {
	if len(profile.Items) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxResultLimit {
		limit = maxResultLimit
	}

	var rows []domain.Result
	warnings := make(map[string]string)
	skipped := domain.SkipStats{}

	for _, item := range profile.Items {
		results, skips, err := s.fetchCategory(ctx, item, limit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[PRICING] category %q failed: %v", item.Category, err)
			warnings[item.Category] = err.Error()
			continue
		}
		skipped.Merge(skips)
		rows = append(rows, results...)
	}

	if len(rows) == 0 {
		report := &domain.Comparison{Warnings: warnings, Skipped: skipped}
		if len(warnings) > 0 {
			return report, fmt.Errorf("%w: %d of %d categories failed", domain.ErrNoResults, len(warnings), len(profile.Items))
		}
		return report, domain.ErrNoResults
	}

	attachNumericPrices(rows)
	sortRows(rows)

	return &domain.Comparison{
		Rows:     rows,
		Best:     rankBest(rows),
		Warnings: warnings,
		Skipped:  skipped,
	}, nil
}

// fetchCategory returns the results for one profile slot, consulting the
// cache first. Only successful, non-empty fetches are cached; skip stats
// are not kept for cache hits since no extraction ran.
func (s *PricingService) fetchCategory(ctx context.Context, item domain.BuildItem, limit int) ([]domain.Result, domain.SkipStats, error) {
	key := s.generateCacheKey(item, limit)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var cached []domain.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil, nil
			}
			// Drop entries that no longer deserialize.
			_ = s.cache.Delete(ctx, key)
		}
	}

	results, skips, err := s.source.FetchResults(ctx, item.Category, item.Product, limit)
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil && len(results) > 0 {
		if data, err := json.Marshal(results); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
				log.Printf("[PRICING] cache set failed for %q: %v", key, err)
			}
		}
	}

	return results, skips, nil
}

// generateCacheKey creates a normalized cache key for one profile slot.
// Format: "pricing:{category}:{product}:{limit}"
func (s *PricingService) generateCacheKey(item domain.BuildItem, limit int) string {
	return fmt.Sprintf("pricing:%s:%s:%d",
		normalizeForCacheKey(item.Category),
		normalizeForCacheKey(item.Product),
		limit,
	)
}

// normalizeForCacheKey lowercases and strips special characters so
// cosmetic differences in user-edited product names share an entry.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// attachNumericPrices computes the comparable numeric value for every
// row. Rows whose display price does not parse keep a nil PriceNum.
func attachNumericPrices(rows []domain.Result) {
	for i := range rows {
		if value, ok := PriceToNumber(rows[i].Price); ok {
			v := value
			rows[i].PriceNum = &v
		}
	}
}

// sortRows orders the full table ascending by category name, then
// ascending by numeric price. Rows without a numeric price sort after any
// priced row of the same category; remaining ties keep their original
// position (the sort is stable), which makes the ordering total and
// reproducible.
func sortRows(rows []domain.Result) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		pi, pj := rows[i].PriceNum, rows[j].PriceNum
		switch {
		case pi != nil && pj != nil:
			return *pi < *pj
		case pi != nil:
			return true
		default:
			return false
		}
	})
}

// rankBest selects the minimum-price row per category from the sorted
// table. Ties on the exact minimum keep the first-seen row only, matching
// the tie-break order of extraction. Categories where every row is
// unpriced contribute nothing.
func rankBest(sorted []domain.Result) []domain.Result {
	var best []domain.Result
	seen := make(map[string]bool)
	for _, row := range sorted {
		if row.PriceNum == nil || seen[row.Category] {
			continue
		}
		seen[row.Category] = true
		best = append(best, row)
	}
	return best
}
