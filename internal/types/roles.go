// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Role is an ordered membership role. Authorization decisions compare role
// ranks numerically, never role strings.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

var roleRanks = map[Role]int{
	RoleMember: 1,
	RoleAdmin:  2,
	RoleOwner:  3,
}

// Rank returns the role's position in the member < admin < owner ordering.
// Unknown roles rank below member.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r grants everything required does.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}
