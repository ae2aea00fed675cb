package amazon

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/partscout/backend/internal/domain"
	"golang.org/x/time/rate"
)

// maxCards bounds how many search result cards are read from one page.
const maxCards = 60

// browserUserAgent keeps the search page from degrading to the
// script-hostile variant.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

// priceSelectors are the price field variants tried per card, in priority
// order. Deal layouts populate a-offscreen only; ranges only appear on
// multi-variant listings.
var priceSelectors = []string{
	"span.a-price-whole",
	"span.a-offscreen",
	"span.a-price-range",
}

// Client fetches Amazon.com.br search result pages and extracts listing
// records from them. It is the live fetch collaborator of the pipeline;
// one in-flight search at a time is assumed (the rate limiter serializes
// callers anyway).
type Client struct {
	httpClient   *resty.Client
	baseURL      string
	host         string
	affiliateTag string
	rateLimiter  *rate.Limiter
	debug        bool
}

// NewClient creates a marketplace client. baseURL must be an absolute
// URL; affiliateTag may be empty to disable link decoration.
func NewClient(baseURL, affiliateTag string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid marketplace base URL %q", baseURL)
	}

	httpClient := resty.New().
		SetTimeout(25 * time.Second).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept-Language", "pt-BR,pt;q=0.9")

	// One search every two seconds with a small burst; polite enough to
	// not trip the marketplace's rate detection across a full profile.
	limiter := rate.NewLimiter(rate.Limit(0.5), 2)

	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		host:         parsed.Host,
		affiliateTag: affiliateTag,
		rateLimiter:  limiter,
	}, nil
}

// SetDebug enables or disables request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SearchURL builds the search results URL for a query, with the affiliate
// tag already applied when one is configured.
func (c *Client) SearchURL(query string) string {
	link := fmt.Sprintf("%s/s?k=%s", c.baseURL, url.QueryEscape(query))
	return DecorateLink(link, c.host, c.affiliateTag)
}

// SearchListings implements domain.SearchClient. It fetches one search
// results page and returns the listing records found on it, in page
// order. Records with missing fields are returned as-is; filtering is the
// extractor's job. There are no retries: a failed search is reported once
// and recovered at the category boundary by the caller.
func (c *Client) SearchListings(ctx context.Context, query string) ([]domain.ListingRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	searchURL := c.SearchURL(query)
	if c.debug {
		log.Printf("[AMAZON] GET %s", searchURL)
	}

	res, err := c.httpClient.R().
		SetContext(ctx).
		Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	records := c.parseListings(doc, searchURL)
	if c.debug {
		log.Printf("[AMAZON] %d listing records for query %q", len(records), query)
	}
	return records, nil
}

// parseListings extracts listing records from the result cards of a
// search page. A card without a link falls back to the search URL itself,
// so every record stays navigable.
func (c *Client) parseListings(doc *goquery.Document, searchURL string) []domain.ListingRecord {
	var records []domain.ListingRecord

	doc.Find("div.s-card-container").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= maxCards {
			return false
		}

		title := strings.TrimSpace(card.Find("h2").First().Text())

		var candidates []string
		for _, selector := range priceSelectors {
			if value := strings.TrimSpace(card.Find(selector).First().Text()); value != "" {
				candidates = append(candidates, value)
			}
		}

		link := searchURL
		if href, ok := card.Find("h2 a").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			link = DecorateLink(c.absoluteLink(href), c.host, c.affiliateTag)
		}

		records = append(records, domain.ListingRecord{
			Title:           title,
			PriceCandidates: candidates,
			Link:            link,
		})
		return true
	})

	return records
}

// absoluteLink resolves card hrefs, which the search page emits relative
// to the site root.
func (c *Client) absoluteLink(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return c.baseURL + href
}

// DecorateLink appends the affiliate tag as a query parameter to links on
// the marketplace host that do not already carry one. The transform is
// pure and idempotent: applying it twice yields the same URL as applying
// it once. Links off the marketplace host and empty tags pass through
// unchanged.
func DecorateLink(link, host, tag string) string {
	if tag == "" || link == "" {
		return link
	}
	if !strings.Contains(link, host) {
		return link
	}
	if strings.Contains(link, "tag=") {
		return link
	}
	joiner := "?"
	if strings.Contains(link, "?") {
		joiner = "&"
	}
	return link + joiner + "tag=" + url.QueryEscape(tag)
}
