package usecase

import (
	"strconv"
	"strings"
)

// currencyPrefix is the fixed marker every normalized price starts with.
const currencyPrefix = "R$ "

// priceNoiseTokens are stripped from raw price text case-insensitively
// before cleaning. Payment-method words show up inline on promo prices
// ("R$ 1.149,00 à vista PIX").
var priceNoiseTokens = []string{"r$", "à vista", "pix", "por"}

// NormalizePriceText parses free-text price input into the canonical
// display form, e.g. "R$ 1.199,00". The second return value is false when
// the input is empty or contains nothing usable after cleaning.
//
// Inputs without a decimal separator are assumed to be whole-currency
// amounts and get a ",00" cents suffix. The function is idempotent on its
// own output.
func NormalizePriceText(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	cleaned := raw
	for _, token := range priceNoiseTokens {
		cleaned = removeFold(cleaned, token)
	}

	// Keep only digits and separators; this also drops whitespace and any
	// leftover currency or installment noise.
	var b strings.Builder
	for _, r := range cleaned {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}

	// Some promo layouts render the cents separator twice.
	price := strings.ReplaceAll(b.String(), ",,", ",")
	if price == "" {
		return "", false
	}
	if !strings.Contains(price, ",") {
		price += ",00"
	}
	return currencyPrefix + price, true
}

// PriceToNumber converts a normalized display price into a comparable
// float. "." is treated as a thousands separator and "," as the decimal
// separator. Any parse failure yields false: callers must treat such
// results as unranked but keep them in the full listing.
func PriceToNumber(display string) (float64, bool) {
	if display == "" {
		return 0, false
	}
	s := strings.ReplaceAll(display, "R$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// removeFold removes every occurrence of token from s, ignoring case.
func removeFold(s, token string) string {
	lower := strings.ToLower(s)
	lowerToken := strings.ToLower(token)
	for {
		idx := strings.Index(lower, lowerToken)
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len(lowerToken):]
		lower = lower[:idx] + lower[idx+len(lowerToken):]
	}
}
