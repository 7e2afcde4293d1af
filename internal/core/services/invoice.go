// internal/core/services/invoice.go
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// Clock returns the current time. Split out so tests can pin it.
type Clock func() time.Time

// InvoiceService handles the invoice lifecycle: draft creation, line items
// with stock reservation, and the terminal paid/cancelled transitions. It
// owns no state of its own; every operation reads and mutates the snapshot.
type InvoiceService struct {
	snapshot *domain.Snapshot
	gate     ports.AccessGate
	now      Clock
	logger   *slog.Logger
}

// NewInvoiceService creates a new invoice service. A nil clock defaults to
// time.Now.
func NewInvoiceService(snapshot *domain.Snapshot, gate ports.AccessGate, clock Clock, logger *slog.Logger) *InvoiceService {
	if clock == nil {
		clock = time.Now
	}
	return &InvoiceService{
		snapshot: snapshot,
		gate:     gate,
		now:      clock,
		logger:   logger.With(slog.String("service", "invoice")),
	}
}

// CreateDraft starts a new sale for the customer and registers the draft in
// the snapshot.
func (s *InvoiceService) CreateDraft(ctx context.Context, role, customerID string) (*domain.Invoice, error) {
	if !s.gate.HasPermission(role, domain.ActionCreateInvoice) {
		return nil, &domain.PermissionDeniedError{Role: role, Action: domain.ActionCreateInvoice}
	}

	if _, err := s.snapshot.Customer(customerID); err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Status:     domain.StatusDraft,
		CreatedAt:  s.now(),
	}
	s.snapshot.Invoices[inv.ID] = inv

	s.logger.InfoContext(ctx, "created invoice draft",
		slog.String("invoice_id", inv.ID),
		slog.String("customer_id", customerID))

	return inv, nil
}

// AddItem adds a line to a draft invoice. The unit price is captured from the
// product at this moment, the line total comes from the discount engine, and
// stock is reserved immediately. Validation happens before any mutation so a
// failed call leaves the snapshot untouched.
func (s *InvoiceService) AddItem(ctx context.Context, role, invoiceID, productID string, quantity int) error {
	if !s.gate.HasPermission(role, domain.ActionCreateInvoice) {
		return &domain.PermissionDeniedError{Role: role, Action: domain.ActionCreateInvoice}
	}

	inv, err := s.snapshot.Invoice(invoiceID)
	if err != nil {
		return err
	}
	if !inv.IsDraft() {
		return &domain.InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Action: "add item to"}
	}

	product, err := s.snapshot.Product(productID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return &domain.InvalidQuantityError{ProductID: productID, Quantity: quantity}
	}
	if err := product.Reserve(quantity); err != nil {
		return err
	}

	item := domain.InvoiceItem{
		ProductID:       productID,
		Quantity:        quantity,
		UnitPriceAtSale: product.UnitPrice,
		Total:           domain.ComputeLinePrice(product.UnitPrice, quantity, product.DiscountRules),
	}
	inv.AppendItem(item)

	s.logger.InfoContext(ctx, "added invoice item",
		slog.String("invoice_id", invoiceID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.String("line_total", item.Total.StringFixed(2)))

	return nil
}

// MarkPaid finalizes a draft invoice. Stock stays as reserved at add time.
func (s *InvoiceService) MarkPaid(ctx context.Context, role, invoiceID string) error {
	if !s.gate.HasPermission(role, domain.ActionCreateInvoice) {
		return &domain.PermissionDeniedError{Role: role, Action: domain.ActionCreateInvoice}
	}

	inv, err := s.snapshot.Invoice(invoiceID)
	if err != nil {
		return err
	}
	if err := inv.MarkPaid(s.now()); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "invoice paid",
		slog.String("invoice_id", invoiceID),
		slog.String("total", inv.Total.StringFixed(2)))

	return nil
}

// Cancel voids a draft invoice and returns every reserved quantity to its
// product. All products are resolved before any stock moves, so the restore
// either happens completely or not at all.
func (s *InvoiceService) Cancel(ctx context.Context, role, invoiceID string) error {
	if !s.gate.HasPermission(role, domain.ActionCreateInvoice) {
		return &domain.PermissionDeniedError{Role: role, Action: domain.ActionCreateInvoice}
	}

	inv, err := s.snapshot.Invoice(invoiceID)
	if err != nil {
		return err
	}
	if !inv.IsDraft() {
		return &domain.InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Action: "cancel"}
	}

	products := make([]*domain.Product, len(inv.Items))
	for i, item := range inv.Items {
		product, err := s.snapshot.Product(item.ProductID)
		if err != nil {
			return err
		}
		products[i] = product
	}

	if err := inv.MarkCancelled(); err != nil {
		return err
	}
	for i, item := range inv.Items {
		products[i].Release(item.Quantity)
	}

	s.logger.InfoContext(ctx, "invoice cancelled",
		slog.String("invoice_id", invoiceID),
		slog.Int("items_restocked", len(inv.Items)))

	return nil
}
