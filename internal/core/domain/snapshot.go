// internal/core/domain/snapshot.go
package domain

// Snapshot is the aggregate root: it owns every entity by id and is the unit
// of persistence. Cross-entity references stay plain string ids resolved
// through these maps, never direct pointers between entities.
type Snapshot struct {
	Products  map[string]*Product  `json:"products"`
	Customers map[string]*Customer `json:"customers"`
	Invoices  map[string]*Invoice  `json:"invoices"`
	Users     map[string]*User     `json:"users"`
}

// NewSnapshot creates an empty snapshot with all collections initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Products:  make(map[string]*Product),
		Customers: make(map[string]*Customer),
		Invoices:  make(map[string]*Invoice),
		Users:     make(map[string]*User),
	}
}

// Normalize initializes any nil collections. Called after deserialization so
// lookups never touch a nil map.
func (s *Snapshot) Normalize() {
	if s.Products == nil {
		s.Products = make(map[string]*Product)
	}
	if s.Customers == nil {
		s.Customers = make(map[string]*Customer)
	}
	if s.Invoices == nil {
		s.Invoices = make(map[string]*Invoice)
	}
	if s.Users == nil {
		s.Users = make(map[string]*User)
	}
}

// Product resolves a product id, returning NotFoundError for unknown ids.
func (s *Snapshot) Product(id string) (*Product, error) {
	p, ok := s.Products[id]
	if !ok {
		return nil, &NotFoundError{Kind: "product", ID: id}
	}
	return p, nil
}

// Customer resolves a customer id, returning NotFoundError for unknown ids.
func (s *Snapshot) Customer(id string) (*Customer, error) {
	c, ok := s.Customers[id]
	if !ok {
		return nil, &NotFoundError{Kind: "customer", ID: id}
	}
	return c, nil
}

// Invoice resolves an invoice id, returning NotFoundError for unknown ids.
func (s *Snapshot) Invoice(id string) (*Invoice, error) {
	inv, ok := s.Invoices[id]
	if !ok {
		return nil, &NotFoundError{Kind: "invoice", ID: id}
	}
	return inv, nil
}

// User resolves a username, returning NotFoundError for unknown names.
func (s *Snapshot) User(username string) (*User, error) {
	u, ok := s.Users[username]
	if !ok {
		return nil, &NotFoundError{Kind: "user", ID: username}
	}
	return u, nil
}

// Authenticate returns the user when the username exists and the password
// matches, nil otherwise.
func (s *Snapshot) Authenticate(username, password string) *User {
	u, ok := s.Users[username]
	if !ok || !u.VerifyPassword(password) {
		return nil
	}
	return u
}
