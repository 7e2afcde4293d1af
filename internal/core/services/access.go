// internal/core/services/access.go
package services

import (
	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// rolePermissions maps each role to the actions it may perform. Admin is
// handled separately: it implies every action.
var rolePermissions = map[string]map[string]bool{
	domain.RoleManager: {
		domain.ActionRead:          true,
		domain.ActionWrite:         true,
		domain.ActionCreateInvoice: true,
		domain.ActionViewReports:   true,
	},
	domain.RoleStaff: {
		domain.ActionRead:          true,
		domain.ActionCreateInvoice: true,
	},
}

// RoleGate implements the access gate over the static role table.
type RoleGate struct{}

// Statically assert that RoleGate implements the AccessGate interface.
var _ ports.AccessGate = RoleGate{}

// NewRoleGate creates the role-table access gate.
func NewRoleGate() RoleGate {
	return RoleGate{}
}

// HasPermission reports whether the role may perform the action.
func (RoleGate) HasPermission(role, action string) bool {
	if role == domain.RoleAdmin {
		return true
	}
	return rolePermissions[role][action]
}
