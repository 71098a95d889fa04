package booking

import "github.com/shopspring/decimal"

// PricingPolicy computes what a stay costs. Implementations must be pure
// functions of their inputs so a policy can be swapped per call without
// affecting totals already written to earlier reservations.
type PricingPolicy interface {
	Total(r Resource, d DateRange) decimal.Decimal
}

var (
	seasonalFactor = decimal.NewFromFloat(1.20)
	discountFactor = decimal.NewFromFloat(0.90)
)

// FlatRate charges the base rate per night with no adjustment.
type FlatRate struct{}

func (FlatRate) Total(r Resource, d DateRange) decimal.Decimal {
	return r.BaseRate.Mul(decimal.NewFromInt(int64(d.Nights())))
}

// SeasonalMultiplier marks the flat total up 20% for high season.
type SeasonalMultiplier struct{}

func (SeasonalMultiplier) Total(r Resource, d DateRange) decimal.Decimal {
	// Round is half away from zero, to two decimal places.
	return FlatRate{}.Total(r, d).Mul(seasonalFactor).Round(2)
}

// DiscountMultiplier takes 10% off the flat total.
type DiscountMultiplier struct{}

func (DiscountMultiplier) Total(r Resource, d DateRange) decimal.Decimal {
	return FlatRate{}.Total(r, d).Mul(discountFactor).Round(2)
}
