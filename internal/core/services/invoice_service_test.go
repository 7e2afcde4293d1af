// internal/core/services/invoice_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/services"
	"github.com/dlamere/shopkeeper/test/helpers"
	"github.com/dlamere/shopkeeper/test/mocks"
)

var fixedTime = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

func newInvoiceService(snapshot *domain.Snapshot) *services.InvoiceService {
	return services.NewInvoiceService(snapshot, services.NewRoleGate(), fixedClock, helpers.TestLogger())
}

func TestInvoiceService_CreateDraft(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		customerID    string
		expectedError bool
		errorContains string
	}{
		{
			name:       "staff_creates_draft",
			role:       domain.RoleStaff,
			customerID: "C001",
		},
		{
			name:          "unknown_customer",
			role:          domain.RoleStaff,
			customerID:    "C999",
			expectedError: true,
			errorContains: "customer C999 not found",
		},
		{
			name:          "unknown_role_denied",
			role:          "visitor",
			customerID:    "C001",
			expectedError: true,
			errorContains: "not permitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := helpers.CreateTestSnapshot()
			svc := newInvoiceService(snapshot)

			inv, err := svc.CreateDraft(context.Background(), tt.role, tt.customerID)
			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Empty(t, snapshot.Invoices)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusDraft, inv.Status)
			assert.Equal(t, tt.customerID, inv.CustomerID)
			assert.True(t, inv.CreatedAt.Equal(fixedTime))
			assert.Contains(t, snapshot.Invoices, inv.ID)
		})
	}
}

func TestInvoiceService_AddItem(t *testing.T) {
	setup := func(t *testing.T) (*domain.Snapshot, *services.InvoiceService, *domain.Invoice) {
		snapshot := helpers.CreateTestSnapshot()
		svc := newInvoiceService(snapshot)
		inv, err := svc.CreateDraft(context.Background(), domain.RoleStaff, "C001")
		require.NoError(t, err)
		return snapshot, svc, inv
	}

	t.Run("reserves_stock_and_prices_line", func(t *testing.T) {
		snapshot, svc, inv := setup(t)
		rule, err := domain.NewPercentageDiscount(decimal.NewFromInt(10))
		require.NoError(t, err)
		bulk, err := domain.NewBulkDiscount(5, decimal.NewFromInt(20))
		require.NoError(t, err)
		snapshot.Products["P001"].DiscountRules = []domain.DiscountRule{rule, bulk}

		require.NoError(t, svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 5))

		assert.Equal(t, 45, snapshot.Products["P001"].QuantityOnHand)
		require.Len(t, inv.Items, 1)
		assert.Equal(t, "360.00", inv.Items[0].Total.StringFixed(2))
		assert.Equal(t, "360.00", inv.Total.StringFixed(2))
		assert.Equal(t, "100.00", inv.Items[0].UnitPriceAtSale.StringFixed(2))
	})

	t.Run("captures_unit_price_at_sale", func(t *testing.T) {
		snapshot, svc, inv := setup(t)
		require.NoError(t, svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 1))

		// A later price change must not touch the recorded line.
		snapshot.Products["P001"].UnitPrice = decimal.NewFromInt(999)
		assert.Equal(t, "100.00", inv.Items[0].UnitPriceAtSale.StringFixed(2))
		assert.Equal(t, "100.00", inv.Total.StringFixed(2))
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		snapshot, svc, inv := setup(t)
		err := svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 0)

		var qtyErr *domain.InvalidQuantityError
		require.ErrorAs(t, err, &qtyErr)
		assert.Equal(t, 50, snapshot.Products["P001"].QuantityOnHand)
		assert.Empty(t, inv.Items)
	})

	t.Run("insufficient_stock_leaves_state_untouched", func(t *testing.T) {
		snapshot, svc, inv := setup(t)
		err := svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 51)

		var stockErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 51, stockErr.Requested)
		assert.Equal(t, 50, stockErr.Available)
		assert.Equal(t, 50, snapshot.Products["P001"].QuantityOnHand)
		assert.Empty(t, inv.Items)
		assert.True(t, inv.Total.IsZero())
	})

	t.Run("unknown_product", func(t *testing.T) {
		_, svc, inv := setup(t)
		err := svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P999", 1)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "product", notFound.Kind)
	})

	t.Run("unknown_invoice", func(t *testing.T) {
		_, svc, _ := setup(t)
		err := svc.AddItem(context.Background(), domain.RoleStaff, "INV-999", "P001", 1)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "invoice", notFound.Kind)
	})

	t.Run("paid_invoice_rejects_items", func(t *testing.T) {
		snapshot, svc, inv := setup(t)
		require.NoError(t, svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 1))
		require.NoError(t, svc.MarkPaid(context.Background(), domain.RoleStaff, inv.ID))

		err := svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 1)
		var stateErr *domain.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, 49, snapshot.Products["P001"].QuantityOnHand)
	})
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	snapshot := helpers.CreateTestSnapshot()
	svc := newInvoiceService(snapshot)
	inv, err := svc.CreateDraft(context.Background(), domain.RoleStaff, "C001")
	require.NoError(t, err)

	t.Run("empty_invoice_rejected", func(t *testing.T) {
		var emptyErr *domain.EmptyInvoiceError
		assert.ErrorAs(t, svc.MarkPaid(context.Background(), domain.RoleStaff, inv.ID), &emptyErr)
	})

	t.Run("paid_with_stock_kept_reserved", func(t *testing.T) {
		require.NoError(t, svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 3))
		require.NoError(t, svc.MarkPaid(context.Background(), domain.RoleStaff, inv.ID))

		assert.Equal(t, domain.StatusPaid, inv.Status)
		require.NotNil(t, inv.PaidAt)
		assert.True(t, inv.PaidAt.Equal(fixedTime))
		assert.Equal(t, 47, snapshot.Products["P001"].QuantityOnHand)
	})
}

func TestInvoiceService_Cancel(t *testing.T) {
	t.Run("restores_reserved_stock", func(t *testing.T) {
		snapshot := helpers.CreateTestSnapshot()
		svc := newInvoiceService(snapshot)
		inv, err := svc.CreateDraft(context.Background(), domain.RoleStaff, "C001")
		require.NoError(t, err)
		require.NoError(t, svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 8))
		require.Equal(t, 42, snapshot.Products["P001"].QuantityOnHand)

		require.NoError(t, svc.Cancel(context.Background(), domain.RoleStaff, inv.ID))

		assert.Equal(t, domain.StatusCancelled, inv.Status)
		assert.Equal(t, 50, snapshot.Products["P001"].QuantityOnHand)
	})

	t.Run("paid_invoice_cannot_be_cancelled", func(t *testing.T) {
		snapshot := helpers.CreateTestSnapshot()
		svc := newInvoiceService(snapshot)
		inv, err := svc.CreateDraft(context.Background(), domain.RoleStaff, "C001")
		require.NoError(t, err)
		require.NoError(t, svc.AddItem(context.Background(), domain.RoleStaff, inv.ID, "P001", 2))
		require.NoError(t, svc.MarkPaid(context.Background(), domain.RoleStaff, inv.ID))

		var stateErr *domain.InvalidStateError
		require.ErrorAs(t, svc.Cancel(context.Background(), domain.RoleStaff, inv.ID), &stateErr)
		assert.Equal(t, 48, snapshot.Products["P001"].QuantityOnHand)
	})
}

func TestInvoiceService_PermissionChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mocks.NewMockAccessGate(ctrl)
	gate.EXPECT().
		HasPermission("auditor", domain.ActionCreateInvoice).
		Return(false).
		Times(4)

	snapshot := helpers.CreateTestSnapshot()
	svc := services.NewInvoiceService(snapshot, gate, fixedClock, helpers.TestLogger())

	var denied *domain.PermissionDeniedError

	_, err := svc.CreateDraft(context.Background(), "auditor", "C001")
	assert.ErrorAs(t, err, &denied)
	assert.ErrorAs(t, svc.AddItem(context.Background(), "auditor", "INV-001", "P001", 1), &denied)
	assert.ErrorAs(t, svc.MarkPaid(context.Background(), "auditor", "INV-001"), &denied)
	assert.ErrorAs(t, svc.Cancel(context.Background(), "auditor", "INV-001"), &denied)
}
