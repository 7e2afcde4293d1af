// internal/core/domain/product.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductCategory represents product categories
type ProductCategory string

// Category constants
const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryGrocery     ProductCategory = "grocery"
	CategoryClothing    ProductCategory = "clothing"
	CategoryHardware    ProductCategory = "hardware"
	CategoryStationery  ProductCategory = "stationery"
	CategoryOther       ProductCategory = "other"
)

// DefaultReorderLevel is applied when a product does not set its own.
const DefaultReorderLevel = 10

// Product represents a catalog item tracked in stock
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	Category       ProductCategory `json:"category"`
	ReorderLevel   int             `json:"reorder_level"`
	DiscountRules  []DiscountRule  `json:"discount_rules,omitempty"`
}

// Validate performs domain validation on the product
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price cannot be negative")
	}
	if p.QuantityOnHand < 0 {
		return fmt.Errorf("quantity_on_hand cannot be negative")
	}
	if p.ReorderLevel < 0 {
		return fmt.Errorf("reorder_level cannot be negative")
	}
	if p.Category == "" {
		p.Category = CategoryOther
	}
	for i, rule := range p.DiscountRules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("discount rule %d: %w", i, err)
		}
	}
	return nil
}

// Reserve decrements stock for an invoice line. The caller checks
// availability first; Reserve guards the never-negative invariant.
func (p *Product) Reserve(quantity int) error {
	if quantity > p.QuantityOnHand {
		return &InsufficientStockError{
			ProductID: p.ID,
			Requested: quantity,
			Available: p.QuantityOnHand,
		}
	}
	p.QuantityOnHand -= quantity
	return nil
}

// Release returns previously reserved stock, reversing a reservation on cancel.
func (p *Product) Release(quantity int) {
	p.QuantityOnHand += quantity
}

// BelowReorder reports whether stock has dropped to or below the reorder level.
func (p *Product) BelowReorder() bool {
	return p.QuantityOnHand <= p.ReorderLevel
}
