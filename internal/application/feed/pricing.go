package feed

import (
	"github.com/shopspring/decimal"

	"github.com/turbota/feedsync/internal/domain/feed"
)

var (
	ninetyNine = decimal.RequireFromString("0.99")
	five       = decimal.NewFromInt(5)
	ten        = decimal.NewFromInt(10)
)

// ApplyRounding applies a marketplace rounding rule to a transformed price.
// Unrecognized rules fall back to plain 2-decimal rounding.
func ApplyRounding(price decimal.Decimal, rule feed.RoundingRule) decimal.Decimal {
	switch rule {
	case feed.RoundingDot99:
		return price.Floor().Add(ninetyNine)
	case feed.RoundingRound5:
		return price.Div(five).Round(0).Mul(five)
	case feed.RoundingRound10:
		return price.Div(ten).Round(0).Mul(ten)
	default:
		return price.Round(2)
	}
}

// parsePositivePrice parses a wire price string. The second return value is
// false when the price is absent, unparsable or not strictly positive.
func parsePositivePrice(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// effectiveMultiplier returns the collection override for the resolved
// mapping when one exists, else the marketplace's global multiplier.
func effectiveMultiplier(mapping *feed.CategoryMapping, overrides []feed.PriceMultiplier, global decimal.Decimal) decimal.Decimal {
	for i := range overrides {
		if overrides[i].ShopifyCollectionID == mapping.ShopifyCollectionID {
			return overrides[i].Multiplier
		}
	}
	return global
}
