// internal/core/domain/pricing_test.go
package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlamere/shopkeeper/internal/core/domain"
)

func mustPercentage(t testing.TB, pct float64) domain.DiscountRule {
	rule, err := domain.NewPercentageDiscount(decimal.NewFromFloat(pct))
	require.NoError(t, err)
	return rule
}

func mustBulk(t testing.TB, threshold int, pct float64) domain.DiscountRule {
	rule, err := domain.NewBulkDiscount(threshold, decimal.NewFromFloat(pct))
	require.NoError(t, err)
	return rule
}

func TestComputeLinePrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice decimal.Decimal
		quantity  int
		rules     []domain.DiscountRule
		want      string
	}{
		{
			name:      "no_rules",
			unitPrice: decimal.NewFromFloat(19.99),
			quantity:  3,
			rules:     nil,
			want:      "59.97",
		},
		{
			name:      "single_percentage",
			unitPrice: decimal.NewFromInt(100),
			quantity:  2,
			rules:     []domain.DiscountRule{mustPercentage(t, 25)},
			want:      "150.00",
		},
		{
			name:      "percentage_then_bulk",
			unitPrice: decimal.NewFromInt(100),
			quantity:  5,
			rules: []domain.DiscountRule{
				mustPercentage(t, 10),
				mustBulk(t, 5, 20),
			},
			want: "360.00",
		},
		{
			name:      "bulk_below_threshold_skipped",
			unitPrice: decimal.NewFromInt(100),
			quantity:  4,
			rules: []domain.DiscountRule{
				mustPercentage(t, 10),
				mustBulk(t, 5, 20),
			},
			want: "360.00",
		},
		{
			name:      "bulk_at_exact_threshold",
			unitPrice: decimal.NewFromInt(10),
			quantity:  5,
			rules:     []domain.DiscountRule{mustBulk(t, 5, 50)},
			want:      "25.00",
		},
		{
			name:      "bulk_one_below_threshold",
			unitPrice: decimal.NewFromInt(10),
			quantity:  4,
			rules:     []domain.DiscountRule{mustBulk(t, 5, 50)},
			want:      "40.00",
		},
		{
			name:      "two_ten_percent_compose_to_nineteen",
			unitPrice: decimal.NewFromInt(100),
			quantity:  1,
			rules: []domain.DiscountRule{
				mustPercentage(t, 10),
				mustPercentage(t, 10),
			},
			want: "81.00",
		},
		{
			name:      "hundred_percent_floors_at_zero",
			unitPrice: decimal.NewFromInt(100),
			quantity:  3,
			rules:     []domain.DiscountRule{mustPercentage(t, 100)},
			want:      "0.00",
		},
		{
			name:      "rounds_to_two_places",
			unitPrice: decimal.NewFromFloat(9.99),
			quantity:  3,
			rules:     []domain.DiscountRule{mustPercentage(t, 33)},
			want:      "20.08",
		},
		{
			name:      "zero_quantity",
			unitPrice: decimal.NewFromInt(100),
			quantity:  0,
			rules:     []domain.DiscountRule{mustPercentage(t, 10)},
			want:      "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeLinePrice(tt.unitPrice, tt.quantity, tt.rules)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputeLinePrice_NeverExceedsBase(t *testing.T) {
	unitPrice := decimal.NewFromFloat(42.50)
	base := unitPrice.Mul(decimal.NewFromInt(7))

	rules := []domain.DiscountRule{
		mustPercentage(t, 5),
		mustBulk(t, 3, 15),
		mustPercentage(t, 0),
	}

	// Each additional rule can only keep the price or lower it.
	prev := domain.ComputeLinePrice(unitPrice, 7, nil)
	assert.True(t, prev.Equal(base.Round(2)))
	for i := 1; i <= len(rules); i++ {
		got := domain.ComputeLinePrice(unitPrice, 7, rules[:i])
		assert.True(t, got.LessThanOrEqual(prev),
			"price increased after applying rule %d: %s -> %s", i, prev, got)
		prev = got
	}
}

func TestComputeLinePrice_InputsUntouched(t *testing.T) {
	rules := []domain.DiscountRule{mustPercentage(t, 10)}
	before := rules[0].Percentage.String()

	domain.ComputeLinePrice(decimal.NewFromInt(100), 5, rules)

	assert.Equal(t, before, rules[0].Percentage.String())
}

func BenchmarkComputeLinePrice(b *testing.B) {
	unitPrice := decimal.NewFromFloat(19.99)
	rules := []domain.DiscountRule{
		mustPercentage(b, 10),
		mustBulk(b, 5, 20),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		domain.ComputeLinePrice(unitPrice, 5, rules)
	}
}
