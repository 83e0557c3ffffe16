// Package salary normalizes free-text salary descriptions scraped from job
// boards ("$100k-$150k", "1.2m+", "£60,000") into a numeric min/max/currency
// triple usable for range queries.
package salary

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stackscout/stackscout/internal/apperrors"
)

// Currency is a 3-letter ISO 4217 code recognized by the normalizer.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Range is the normalized form of a salary description. Min and Max are
// annual amounts in whole currency units; nil means unspecified. When both
// are nil the text did not match any known salary shape. Currency is empty
// when no currency glyph was present.
type Range struct {
	Min      *int64   `json:"min,omitempty"`
	Max      *int64   `json:"max,omitempty"`
	Currency Currency `json:"currency,omitempty"`
}

// Unspecified reports whether the range carries no amounts at all.
func (r Range) Unspecified() bool {
	return r.Min == nil && r.Max == nil
}

// currencyGlyphs maps currency symbols to ISO codes. The input is scanned in
// rune order and the first recognized glyph wins, even when a range mixes
// symbols ("$100k-€150k" is treated as USD).
var currencyGlyphs = map[rune]Currency{
	'$': USD,
	'€': EUR,
	'£': GBP,
}

const amountExpr = `(\d+(?:\.\d+)?)([kKmM]?)`

// Shape patterns are evaluated in fixed priority order against the cleaned,
// fully-anchored text. Each handler converts capture groups to amounts; a
// handler that cannot produce valid amounts yields the all-absent result
// instead of falling through to a lower-priority pattern.
var shapePatterns = []struct {
	re    *regexp.Regexp
	apply func(groups []string) (min, max *int64, ok bool)
}{
	{
		// Range: both sides carry their own suffix, so "100k-1M" is valid.
		re: regexp.MustCompile(`^` + amountExpr + `-` + amountExpr + `$`),
		apply: func(g []string) (*int64, *int64, bool) {
			lo, ok := amountValue(g[1], g[2])
			if !ok {
				return nil, nil, false
			}
			hi, ok := amountValue(g[3], g[4])
			if !ok {
				return nil, nil, false
			}
			// An inverted range violates the min<=max invariant and is
			// treated as unrecognized rather than silently swapped.
			if lo > hi {
				return nil, nil, false
			}
			return &lo, &hi, true
		},
	},
	{
		// Open minimum: a floor with no stated upper bound.
		re: regexp.MustCompile(`^` + amountExpr + `\+$`),
		apply: func(g []string) (*int64, *int64, bool) {
			lo, ok := amountValue(g[1], g[2])
			if !ok {
				return nil, nil, false
			}
			return &lo, nil, true
		},
	},
	{
		// Single value: an exact point, not a floor.
		re: regexp.MustCompile(`^` + amountExpr + `$`),
		apply: func(g []string) (*int64, *int64, bool) {
			v, ok := amountValue(g[1], g[2])
			if !ok {
				return nil, nil, false
			}
			return &v, &v, true
		},
	},
}

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Parse converts a raw salary string into a Range.
//
// Input that is empty after trimming is a caller defect and returns an error
// wrapping apperrors.ErrValidation. Any other text the normalizer cannot
// understand degrades to an all-absent Range with a nil error; free-text
// salary fields from heterogeneous scraped sources are expected to be messy.
//
// Parse is pure and safe for concurrent use.
func Parse(raw string) (Range, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Range{}, fmt.Errorf("salary text is blank: %w", apperrors.ErrValidation)
	}

	// Currency detection is independent of amount-pattern success, so
	// "$ negotiable" still records USD with no amounts.
	out := Range{Currency: detectCurrency(trimmed)}

	cleaned := cleanAmountText(trimmed)
	for _, p := range shapePatterns {
		g := p.re.FindStringSubmatch(cleaned)
		if g == nil {
			continue
		}
		if min, max, ok := p.apply(g); ok {
			out.Min, out.Max = min, max
		}
		break
	}
	return out, nil
}

// detectCurrency returns the code of the first recognized currency glyph.
func detectCurrency(s string) Currency {
	for _, r := range s {
		if c, ok := currencyGlyphs[r]; ok {
			return c
		}
	}
	return ""
}

// cleanAmountText strips every character that cannot be part of an amount
// expression. Commas are treated as thousands separators and discarded
// rather than validated.
func cleanAmountText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '+' || r == '.':
			b.WriteRune(r)
		case r == 'k' || r == 'K' || r == 'm' || r == 'M':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// amountValue parses a decimal amount, applies the suffix multiplier
// (k=1,000, m=1,000,000) and rounds half-up (away from zero) to the nearest
// integer. It reports false on parse failure, a negative result, or int64
// overflow.
func amountValue(num, suffix string) (int64, bool) {
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0, false
	}
	switch suffix {
	case "k", "K":
		d = d.Mul(thousand)
	case "m", "M":
		d = d.Mul(million)
	}
	d = d.Round(0)
	if d.Sign() < 0 || d.Cmp(maxInt64) > 0 {
		return 0, false
	}
	return d.IntPart(), true
}
