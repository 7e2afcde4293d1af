// internal/core/ports/access.go
package ports

// AccessGate is consulted before privileged operations. The core never
// authenticates; it only asks whether a role may perform an action.
type AccessGate interface {
	HasPermission(role, action string) bool
}
