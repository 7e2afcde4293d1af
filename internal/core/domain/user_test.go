// internal/core/domain/user_test.go
package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlamere/shopkeeper/internal/core/domain"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		role      string
		wantError bool
	}{
		{name: "admin_role", username: "alice", role: domain.RoleAdmin},
		{name: "manager_role", username: "bob", role: domain.RoleManager},
		{name: "staff_role", username: "carol", role: domain.RoleStaff},
		{name: "unknown_role", username: "dave", role: "superuser", wantError: true},
		{name: "empty_username", username: "", role: domain.RoleStaff, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := domain.NewUser(tt.username, "secret", tt.role)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, u.Username)
			assert.Equal(t, tt.role, u.Role)
			assert.NotEqual(t, "secret", u.PasswordHash)
		})
	}
}

func TestUser_VerifyPassword(t *testing.T) {
	u, err := domain.NewUser("alice", "correct horse", domain.RoleAdmin)
	require.NoError(t, err)

	assert.True(t, u.VerifyPassword("correct horse"))
	assert.False(t, u.VerifyPassword("wrong horse"))
	assert.False(t, u.VerifyPassword(""))
}

func TestSnapshot_Authenticate(t *testing.T) {
	snapshot := domain.NewSnapshot()
	u, err := domain.NewUser("alice", "secret", domain.RoleManager)
	require.NoError(t, err)
	snapshot.Users[u.Username] = u

	assert.Equal(t, u, snapshot.Authenticate("alice", "secret"))
	assert.Nil(t, snapshot.Authenticate("alice", "nope"))
	assert.Nil(t, snapshot.Authenticate("mallory", "secret"))
}
