// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dlamere/shopkeeper/internal/core/domain"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// CreateTestProduct returns a valid product, optionally mutated by overrides.
func CreateTestProduct(overrides ...func(*domain.Product)) *domain.Product {
	p := &domain.Product{
		ID:             "P001",
		Name:           "Test Widget",
		UnitPrice:      decimal.NewFromInt(100),
		QuantityOnHand: 50,
		Category:       domain.CategoryElectronics,
		ReorderLevel:   10,
	}
	for _, override := range overrides {
		override(p)
	}
	return p
}

// CreateTestCustomer returns a valid customer, optionally mutated by overrides.
func CreateTestCustomer(overrides ...func(*domain.Customer)) *domain.Customer {
	c := &domain.Customer{
		ID:    "C001",
		Name:  "Test Customer",
		Email: "customer@example.test",
	}
	for _, override := range overrides {
		override(c)
	}
	return c
}

// CreateTestSnapshot returns a snapshot seeded with one product and one
// customer under the usual test ids.
func CreateTestSnapshot() *domain.Snapshot {
	snapshot := domain.NewSnapshot()
	p := CreateTestProduct()
	c := CreateTestCustomer()
	snapshot.Products[p.ID] = p
	snapshot.Customers[c.ID] = c
	return snapshot
}

// CreatePaidInvoice builds a paid invoice from (productID, quantity, lineTotal)
// triples, bypassing stock reservation. Totals are taken as given so report
// tests can pin exact amounts.
func CreatePaidInvoice(id, customerID string, paidAt time.Time, lines ...TestLine) *domain.Invoice {
	inv := &domain.Invoice{
		ID:         id,
		CustomerID: customerID,
		Status:     domain.StatusPaid,
		CreatedAt:  paidAt.Add(-time.Hour),
		PaidAt:     &paidAt,
	}
	for _, line := range lines {
		inv.Items = append(inv.Items, domain.InvoiceItem{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			UnitPriceAtSale: line.Total.Div(decimal.NewFromInt(int64(line.Quantity))),
			Total:           line.Total,
		})
	}
	inv.RecalculateTotal()
	return inv
}

// TestLine is one invoice line for CreatePaidInvoice.
type TestLine struct {
	ProductID string
	Quantity  int
	Total     decimal.Decimal
}
