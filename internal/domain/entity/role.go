package entity

import (
	"slices"
	"strings"
)

// Role is an authorization role carried in the roles claim of access tokens.
type Role string

const (
	RoleCustomer Role = "customer"
	// RoleAdmin places orders on behalf of customers and manages order state.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// GrantedBy reports whether the token claims include r. Claim values are
// compared case-insensitively; unknown roles never grant anything.
func (r Role) GrantedBy(claims []string) bool {
	return slices.ContainsFunc(claims, func(claim string) bool {
		return strings.EqualFold(strings.TrimSpace(claim), string(r))
	})
}
