// internal/core/services/access_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/services"
)

func TestRoleGate_HasPermission(t *testing.T) {
	gate := services.NewRoleGate()

	allActions := []string{
		domain.ActionRead,
		domain.ActionWrite,
		domain.ActionCreateInvoice,
		domain.ActionViewReports,
	}

	t.Run("admin_implies_every_action", func(t *testing.T) {
		for _, action := range allActions {
			assert.True(t, gate.HasPermission(domain.RoleAdmin, action), "action %s", action)
		}
	})

	tests := []struct {
		name   string
		role   string
		action string
		want   bool
	}{
		{name: "manager_read", role: domain.RoleManager, action: domain.ActionRead, want: true},
		{name: "manager_write", role: domain.RoleManager, action: domain.ActionWrite, want: true},
		{name: "manager_create_invoice", role: domain.RoleManager, action: domain.ActionCreateInvoice, want: true},
		{name: "manager_view_reports", role: domain.RoleManager, action: domain.ActionViewReports, want: true},
		{name: "staff_read", role: domain.RoleStaff, action: domain.ActionRead, want: true},
		{name: "staff_create_invoice", role: domain.RoleStaff, action: domain.ActionCreateInvoice, want: true},
		{name: "staff_write_denied", role: domain.RoleStaff, action: domain.ActionWrite, want: false},
		{name: "staff_view_reports_denied", role: domain.RoleStaff, action: domain.ActionViewReports, want: false},
		{name: "unknown_role_denied", role: "visitor", action: domain.ActionRead, want: false},
		{name: "unknown_action_denied", role: domain.RoleManager, action: "drop_tables", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.HasPermission(tt.role, tt.action))
		})
	}
}
