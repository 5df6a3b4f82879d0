// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// Manhwaverse only distinguishes the curating admin from everyone else; the
// hierarchy keeps room for intermediate roles without touching call sites.
type UserRole string

const (
	// Unrestricted catalog curation access
	RoleAdmin UserRole = "admin"

	// Default role for the reading viewer
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
