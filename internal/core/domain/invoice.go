// internal/core/domain/invoice.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceItem is a single line on an invoice. UnitPriceAtSale is captured when
// the line is added and never re-read from the product afterwards.
type InvoiceItem struct {
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	UnitPriceAtSale decimal.Decimal `json:"unit_price_at_sale"`
	Total           decimal.Decimal `json:"total"`
}

// Invoice represents a sale. It is created as a draft, accumulates items, and
// transitions exactly once to paid or cancelled. Both end states are terminal.
type Invoice struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Items      []InvoiceItem   `json:"items"`
	Status     InvoiceStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	Total      decimal.Decimal `json:"total"`
}

// IsDraft reports whether the invoice can still be mutated.
func (inv *Invoice) IsDraft() bool {
	return inv.Status == StatusDraft
}

// AppendItem adds a line and keeps the invariant Total == sum of item totals.
func (inv *Invoice) AppendItem(item InvoiceItem) {
	inv.Items = append(inv.Items, item)
	inv.RecalculateTotal()
}

// RecalculateTotal recomputes the invoice total from its current items.
func (inv *Invoice) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Total)
	}
	inv.Total = total
}

// MarkPaid transitions draft -> paid. Finalizing an empty invoice is rejected.
func (inv *Invoice) MarkPaid(now time.Time) error {
	if inv.Status != StatusDraft {
		return &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Action: "pay"}
	}
	if len(inv.Items) == 0 {
		return &EmptyInvoiceError{InvoiceID: inv.ID}
	}
	inv.Status = StatusPaid
	inv.PaidAt = &now
	return nil
}

// MarkCancelled transitions draft -> cancelled. Stock restoration is the
// caller's responsibility since it touches products outside the invoice.
func (inv *Invoice) MarkCancelled() error {
	if inv.Status != StatusDraft {
		return &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Action: "cancel"}
	}
	inv.Status = StatusCancelled
	return nil
}

// UnitsSold returns the total quantity across all items.
func (inv *Invoice) UnitsSold() int {
	units := 0
	for _, item := range inv.Items {
		units += item.Quantity
	}
	return units
}

// PaidWithin reports whether the invoice was paid inside [start, end] inclusive.
func (inv *Invoice) PaidWithin(start, end time.Time) bool {
	if inv.Status != StatusPaid || inv.PaidAt == nil {
		return false
	}
	return !inv.PaidAt.Before(start) && !inv.PaidAt.After(end)
}
