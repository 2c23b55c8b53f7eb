// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package sec

// # Roles

// The public API is anonymous; the only privileged identity is the single
// operator account that maintains facility master data.
const (
	// RoleAdmin has unrestricted access to the admin routes.
	RoleAdmin = "admin"
)

// IsAdmin reports whether the claims carry the admin role.
func (c *AuthClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
