// Package currency normalizes free-text monetary amounts into US dollars.
// Intake forms accept budgets as plain numbers, symbol-prefixed amounts, or
// Indian "lakh" figures, so every value is funneled through one converter
// before any scoring tier is applied.
package currency

import (
	"regexp"
	"strconv"
	"strings"
)

// Rates maps a lowercase currency token to its USD conversion rate.
// The token set is data, not control flow, so new currencies can be added
// without touching the parser.
type Rates map[string]float64

// DefaultRates returns the conversion table used in production.
func DefaultRates() Rates {
	return Rates{
		"inr": 0.012,
		"eur": 1.08,
		"aed": 0.27,
	}
}

// Converter turns raw budget strings into USD amounts.
type Converter struct {
	rates Rates
}

// NewConverter creates a Converter with the given rate table.
// A nil table falls back to DefaultRates.
func NewConverter(rates Rates) *Converter {
	if rates == nil {
		rates = DefaultRates()
	}
	return &Converter{rates: rates}
}

const lakhINR = 100000

var (
	lakhPattern  = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*lakh`)
	digitPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

	// Marker tokens checked against the lowercased input. Symbols and codes
	// both count; "rs" matches the common Indian shorthand.
	inrMarkers = []string{"₹", "inr", "rs"}
	eurMarkers = []string{"€", "eur"}
	aedMarkers = []string{"aed"}
)

// ToUSD converts a free-text amount into US dollars.
// It never fails: empty or unparseable input yields 0, and the result is
// always non-negative. Amounts with no currency marker are assumed to
// already be USD.
func (c *Converter) ToUSD(raw string) float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}

	// "25 lakh" style amounts are INR by definition.
	if m := lakhPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return n * lakhINR * c.rate("inr")
	}

	stripped := strings.ReplaceAll(s, ",", "")
	digits := digitPattern.FindString(stripped)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil || n < 0 {
		return 0
	}

	switch {
	case containsAny(s, inrMarkers):
		return n * c.rate("inr")
	case containsAny(s, eurMarkers):
		return n * c.rate("eur")
	case containsAny(s, aedMarkers):
		return n * c.rate("aed")
	}
	return n
}

func (c *Converter) rate(code string) float64 {
	if r, ok := c.rates[code]; ok {
		return r
	}
	return 1
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
