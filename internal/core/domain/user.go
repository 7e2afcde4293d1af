// internal/core/domain/user.go
package domain

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Role constants
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Actions consulted through the access gate.
const (
	ActionRead          = "read"
	ActionWrite         = "write"
	ActionCreateInvoice = "create_invoice"
	ActionViewReports   = "view_reports"
)

// User represents an operator account. Passwords are stored as SHA-256 hex
// digests; authentication itself is outside the core, which only consults the
// role through the access gate.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// NewUser creates a user with the password hashed.
func NewUser(username, password, role string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
	default:
		return nil, fmt.Errorf("unknown role: %q", role)
	}
	return &User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         role,
	}, nil
}

// HashPassword returns the hex-encoded SHA-256 digest of the password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks a candidate password in constant time.
func (u *User) VerifyPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(u.PasswordHash)) == 1
}
