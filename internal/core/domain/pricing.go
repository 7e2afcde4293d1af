// internal/core/domain/pricing.go
package domain

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ComputeLinePrice returns the charged amount for one invoice line: unit price
// times quantity, transformed by each discount rule in order. Rules compose
// multiplicatively (two 10% rules yield a 19% total discount, not 20%). Bulk
// rules are skipped when quantity is below their threshold. The result is
// clamped at zero and rounded to 2 decimal places after all rules compose.
//
// Pure function: reads only its inputs, safe for concurrent callers.
func ComputeLinePrice(unitPrice decimal.Decimal, quantity int, rules []DiscountRule) decimal.Decimal {
	price := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	for _, rule := range rules {
		switch rule.Type {
		case DiscountPercentage:
			price = price.Mul(one.Sub(rule.Percentage.Div(hundred)))
		case DiscountBulk:
			if quantity >= rule.Threshold {
				price = price.Mul(one.Sub(rule.Percentage.Div(hundred)))
			}
		}
	}

	if price.IsNegative() {
		price = decimal.Zero
	}
	return price.Round(2)
}
