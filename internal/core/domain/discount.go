// internal/core/domain/discount.go
package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DiscountType discriminates the discount rule variants. The tag is part of
// the persisted schema; a rule without a recognized tag is rejected on load.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountBulk       DiscountType = "bulk"
)

// DiscountRule is a tagged variant over {Percentage, Bulk}. Percentage applies
// unconditionally; Bulk applies only when the line quantity reaches Threshold.
// Rules are stateless and applied in list order.
type DiscountRule struct {
	Type       DiscountType    `json:"type"`
	Percentage decimal.Decimal `json:"percentage"`
	Threshold  int             `json:"threshold,omitempty"`
}

// NewPercentageDiscount creates a percentage rule, validating the percentage range.
func NewPercentageDiscount(percentage decimal.Decimal) (DiscountRule, error) {
	r := DiscountRule{Type: DiscountPercentage, Percentage: percentage}
	if err := r.Validate(); err != nil {
		return DiscountRule{}, err
	}
	return r, nil
}

// NewBulkDiscount creates a bulk rule that applies at or above threshold units.
func NewBulkDiscount(threshold int, percentage decimal.Decimal) (DiscountRule, error) {
	r := DiscountRule{Type: DiscountBulk, Percentage: percentage, Threshold: threshold}
	if err := r.Validate(); err != nil {
		return DiscountRule{}, err
	}
	return r, nil
}

// Validate enforces the variant invariants: percentage within [0, 100] and a
// positive threshold for bulk rules.
func (r DiscountRule) Validate() error {
	switch r.Type {
	case DiscountPercentage:
	case DiscountBulk:
		if r.Threshold < 1 {
			return fmt.Errorf("bulk discount threshold must be positive, got %d", r.Threshold)
		}
	default:
		return fmt.Errorf("unknown discount type: %q", r.Type)
	}
	if r.Percentage.IsNegative() || r.Percentage.GreaterThan(hundred) {
		return fmt.Errorf("discount percentage must be between 0 and 100, got %s", r.Percentage)
	}
	return nil
}

// UnmarshalJSON decodes a rule and rejects payloads whose variant tag is
// missing or unknown. Losing the tag would silently change pricing.
func (r *DiscountRule) UnmarshalJSON(data []byte) error {
	type alias DiscountRule
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	rule := DiscountRule(decoded)
	if err := rule.Validate(); err != nil {
		return err
	}
	*r = rule
	return nil
}
