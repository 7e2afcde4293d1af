// internal/core/domain/customer.go
package domain

import "fmt"

// Customer represents a buyer referenced by invoices. Its lifetime is
// independent of any invoice that points at it.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Validate performs domain validation on the customer
func (c *Customer) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
