package domain

import "strings"

type Role string

const (
	// RoleStudent browses scholarships, applies, pays fees and writes reviews.
	RoleStudent Role = "student"
	// RoleModerator is recognised by role updates; no operation is gated on it yet.
	RoleModerator Role = "moderator"
	// RoleAdmin manages scholarships and user roles and may delete any review or application.
	RoleAdmin Role = "admin"
)

// DefaultRole is assigned on registration and reported when no user record exists.
const DefaultRole = RoleStudent

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", false
	}
	return r, true
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleModerator || r == RoleAdmin
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

func (r Role) String() string { return string(r) }
