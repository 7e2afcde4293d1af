// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// CatalogService manages products and customers: creation, restocking, and
// discount rule assignment. Invoice fulfillment mutates stock elsewhere; this
// service covers the management menu's write operations.
type CatalogService struct {
	snapshot *domain.Snapshot
	gate     ports.AccessGate
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(snapshot *domain.Snapshot, gate ports.AccessGate, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		snapshot: snapshot,
		gate:     gate,
		logger:   logger.With(slog.String("service", "catalog")),
	}
}

// AddProduct validates and registers a new product.
func (s *CatalogService) AddProduct(ctx context.Context, role string, product domain.Product) error {
	if !s.gate.HasPermission(role, domain.ActionWrite) {
		return &domain.PermissionDeniedError{Role: role, Action: domain.ActionWrite}
	}

	if product.ReorderLevel == 0 {
		product.ReorderLevel = domain.DefaultReorderLevel
	}
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if _, exists := s.snapshot.Products[product.ID]; exists {
		return fmt.Errorf("product %s already exists", product.ID)
	}

	s.snapshot.Products[product.ID] = &product

	s.logger.InfoContext(ctx, "added product",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name))

	return nil
}

// Restock increases a product's quantity on hand.
func (s *CatalogService) Restock(ctx context.Context, role, productID string, quantity int) error {
	if !s.gate.HasPermission(role, domain.ActionWrite) {
		return &domain.PermissionDeniedError{Role: role, Action: domain.ActionWrite}
	}

	product, err := s.snapshot.Product(productID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return &domain.InvalidQuantityError{ProductID: productID, Quantity: quantity}
	}

	product.Release(quantity)

	s.logger.InfoContext(ctx, "restocked product",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("on_hand", product.QuantityOnHand))

	return nil
}

// AttachDiscountRule appends a rule to the product's ordered rule list.
// Order matters: rules apply sequentially at sale time.
func (s *CatalogService) AttachDiscountRule(ctx context.Context, role, productID string, rule domain.DiscountRule) error {
	if !s.gate.HasPermission(role, domain.ActionWrite) {
		return &domain.PermissionDeniedError{Role: role, Action: domain.ActionWrite}
	}

	product, err := s.snapshot.Product(productID)
	if err != nil {
		return err
	}
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	product.DiscountRules = append(product.DiscountRules, rule)

	s.logger.InfoContext(ctx, "attached discount rule",
		slog.String("product_id", productID),
		slog.String("type", string(rule.Type)))

	return nil
}

// AddCustomer validates and registers a new customer.
func (s *CatalogService) AddCustomer(ctx context.Context, role string, customer domain.Customer) error {
	if !s.gate.HasPermission(role, domain.ActionWrite) {
		return &domain.PermissionDeniedError{Role: role, Action: domain.ActionWrite}
	}

	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if _, exists := s.snapshot.Customers[customer.ID]; exists {
		return fmt.Errorf("customer %s already exists", customer.ID)
	}

	s.snapshot.Customers[customer.ID] = &customer

	s.logger.InfoContext(ctx, "added customer",
		slog.String("customer_id", customer.ID),
		slog.String("name", customer.Name))

	return nil
}
