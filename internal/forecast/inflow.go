package forecast

import (
	"math"

	"github.com/shopspring/decimal"
)

// Inflow returns the total bin volume expected at warehouse in the given
// week number, or 0 when nothing is scheduled.
func Inflow(pending PendingInflow, warehouse string, week int) float64 {
	return inflowDecimal(pending, warehouse, week).InexactFloat64()
}

// inflowDecimal sums in decimal so that fractional pallet counts accumulate
// without binary rounding drift across the horizon.
func inflowDecimal(pending PendingInflow, warehouse string, week int) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range pending.Volumes(warehouse, week) {
		sum = sum.Add(nonNegative(v))
	}
	return sum
}

// nonNegative converts a volume to decimal, mapping negative, NaN and
// infinite values to zero so occupancy can never decrease.
func nonNegative(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
