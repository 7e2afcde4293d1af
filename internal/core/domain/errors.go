// internal/core/domain/errors.go
package domain

import "fmt"

// NotFoundError indicates a reference to an unknown entity id.
type NotFoundError struct {
	Kind string // "product", "customer", "invoice", "user"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidQuantityError indicates a non-positive quantity on an item operation.
type InvalidQuantityError struct {
	ProductID string
	Quantity  int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be positive for product %s, got %d", e.ProductID, e.Quantity)
}

// InsufficientStockError indicates a requested quantity exceeds the stock on hand.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// InvalidStateError indicates an operation not permitted in the invoice's current status.
type InvalidStateError struct {
	InvoiceID string
	Status    InvoiceStatus
	Action    string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s invoice %s in status %s", e.Action, e.InvoiceID, e.Status)
}

// EmptyInvoiceError indicates an attempt to finalize an invoice with no items.
type EmptyInvoiceError struct {
	InvoiceID string
}

func (e *EmptyInvoiceError) Error() string {
	return fmt.Sprintf("invoice %s has no items", e.InvoiceID)
}

// InvalidRangeError indicates a report date range whose start is after its end.
type InvalidRangeError struct {
	Start string
	End   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s", e.Start, e.End)
}

// PermissionDeniedError indicates the access gate rejected a privileged operation.
type PermissionDeniedError struct {
	Role   string
	Action string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("role %s is not permitted to %s", e.Role, e.Action)
}

// PersistenceError indicates a malformed or unreadable snapshot. Fatal on load.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
