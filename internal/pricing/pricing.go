// Package pricing holds the pure calculation core shared by all four
// budget types. Functions here have no side effects and never return
// errors: callers are expected to sanitize numeric input at the boundary
// (non-numeric entry coerced to 0 or 1) before invoking the engine.
//
// All money values are decimals kept at full precision; rounding to two
// places happens at presentation time only, in the quote renderer.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"florada/internal/availability"
)

// LineTotal computes quantity × unitPrice for a single line item.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ArrangementTotal sums the given flower line totals and multiplies by the
// number of copies of the arrangement being bought.
func ArrangementTotal(flowerLineTotals []decimal.Decimal, arrangementQuantity int) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range flowerLineTotals {
		sum = sum.Add(t)
	}
	return sum.Mul(decimal.NewFromInt(int64(arrangementQuantity)))
}

// InclusiveDays returns the inclusive day count of a rental or booking
// period: ceil((end-start)/1 day) + 1, clamped to 0 when end precedes
// start. A one-day booking yields 1, not 0.
func InclusiveDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		return 0
	}
	days := int((diff + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	return days + 1
}

// InclusiveRangeDays is InclusiveDays applied to a DateRange.
func InclusiveRangeDays(r availability.DateRange) int {
	return InclusiveDays(r.Start, r.End)
}

// RentalTotal computes dailyRate × days × quantity + freight. Freight is a
// flat fee applied once per line, already resolved by the caller (zero when
// no delivery location was supplied).
func RentalTotal(dailyRate decimal.Decimal, days, quantity int, freight decimal.Decimal) decimal.Decimal {
	rental := dailyRate.Mul(decimal.NewFromInt(int64(days))).Mul(decimal.NewFromInt(int64(quantity)))
	return rental.Add(freight)
}

// LaborSubtotal sums the line totals of the three labor sections.
func LaborSubtotal(workers, lodging, food []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, section := range [][]decimal.Decimal{workers, lodging, food} {
		for _, t := range section {
			sum = sum.Add(t)
		}
	}
	return sum
}

// DiscountedTotal applies a percentage discount to a subtotal and returns
// the discount value and the final total. discountPercent is expected in
// [0,100] but is deliberately not clamped here; callers validate the range
// before display to avoid negative totals.
func DiscountedTotal(subtotal decimal.Decimal, discountPercent decimal.Decimal) (discountValue, finalTotal decimal.Decimal) {
	discountValue = subtotal.Mul(discountPercent).Div(decimal.NewFromInt(100))
	finalTotal = subtotal.Sub(discountValue)
	return discountValue, finalTotal
}
