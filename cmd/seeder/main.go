package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dlamere/shopkeeper/internal/adapters/file"
	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/pkg/logger"
)

// Seeds a snapshot file with a small demo dataset: products with discount
// rules, customers, users for every role, and a couple of paid invoices so
// the reports have something to aggregate.
func main() {
	path := flag.String("out", "inventory_data.json", "snapshot file to write")
	flag.Parse()

	slogger := logger.SetupLogger("info", "text")
	ctx := context.Background()

	snapshot, err := buildSnapshot()
	if err != nil {
		slogger.Error("failed to build snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := file.NewSnapshotStore(*path, slogger)
	if err := store.Save(ctx, snapshot); err != nil {
		slogger.Error("failed to save snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("seeded snapshot",
		slog.String("path", *path),
		slog.Int("products", len(snapshot.Products)),
		slog.Int("customers", len(snapshot.Customers)),
		slog.Int("invoices", len(snapshot.Invoices)))
}

func buildSnapshot() (*domain.Snapshot, error) {
	snapshot := domain.NewSnapshot()

	tenPct, err := domain.NewPercentageDiscount(decimal.NewFromInt(10))
	if err != nil {
		return nil, err
	}
	bulkTwenty, err := domain.NewBulkDiscount(5, decimal.NewFromInt(20))
	if err != nil {
		return nil, err
	}

	products := []*domain.Product{
		{
			ID:             "P001",
			Name:           "Mechanical Keyboard",
			UnitPrice:      decimal.NewFromInt(100),
			QuantityOnHand: 40,
			Category:       domain.CategoryElectronics,
			ReorderLevel:   10,
			DiscountRules:  []domain.DiscountRule{tenPct, bulkTwenty},
		},
		{
			ID:             "P002",
			Name:           "A4 Notebook",
			UnitPrice:      decimal.RequireFromString("3.50"),
			QuantityOnHand: 200,
			Category:       domain.CategoryStationery,
			ReorderLevel:   25,
		},
		{
			ID:             "P003",
			Name:           "Claw Hammer",
			UnitPrice:      decimal.RequireFromString("17.99"),
			QuantityOnHand: 8,
			Category:       domain.CategoryHardware,
			ReorderLevel:   10,
		},
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		snapshot.Products[p.ID] = p
	}

	customers := []*domain.Customer{
		{ID: "C001", Name: "Harbor Cafe", Email: "orders@harborcafe.test"},
		{ID: "C002", Name: "Jo Whitfield", Phone: "555-0142"},
	}
	for _, c := range customers {
		snapshot.Customers[c.ID] = c
	}

	for _, u := range []struct{ name, password, role string }{
		{"admin", "admin", domain.RoleAdmin},
		{"manager", "manager", domain.RoleManager},
		{"staff", "staff", domain.RoleStaff},
	} {
		user, err := domain.NewUser(u.name, u.password, u.role)
		if err != nil {
			return nil, err
		}
		snapshot.Users[user.Username] = user
	}

	// Two paid invoices for the first customer so every report has data.
	paidAt := time.Date(2026, time.August, 14, 10, 30, 0, 0, time.UTC)
	for i, lines := range [][]struct {
		productID string
		qty       int
	}{
		{{"P001", 5}, {"P002", 10}},
		{{"P003", 3}},
	} {
		inv := &domain.Invoice{
			ID:         uuid.New().String(),
			CustomerID: "C001",
			Status:     domain.StatusDraft,
			CreatedAt:  paidAt.Add(time.Duration(i) * 24 * time.Hour),
		}
		for _, line := range lines {
			product := snapshot.Products[line.productID]
			if err := product.Reserve(line.qty); err != nil {
				return nil, err
			}
			inv.AppendItem(domain.InvoiceItem{
				ProductID:       line.productID,
				Quantity:        line.qty,
				UnitPriceAtSale: product.UnitPrice,
				Total:           domain.ComputeLinePrice(product.UnitPrice, line.qty, product.DiscountRules),
			})
		}
		if err := inv.MarkPaid(inv.CreatedAt.Add(2 * time.Hour)); err != nil {
			return nil, err
		}
		snapshot.Invoices[inv.ID] = inv
	}

	return snapshot, nil
}
