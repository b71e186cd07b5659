package entity

import (
	"strings"

	"github.com/google/uuid"
)

// OwnerKind distinguishes the two disjoint cart-owner identifier spaces.
type OwnerKind string

const (
	// OwnerKindUser identifies an authenticated customer by user ID.
	OwnerKindUser OwnerKind = "user"
	// OwnerKindSession identifies a guest by an opaque session token.
	OwnerKindSession OwnerKind = "session"
)

// String returns the string representation of the OwnerKind.
func (k OwnerKind) String() string {
	return string(k)
}

// IsValid checks if the OwnerKind is a valid value.
func (k OwnerKind) IsValid() bool {
	switch k {
	case OwnerKindUser, OwnerKindSession:
		return true
	default:
		return false
	}
}

// CartOwner identifies whose cart a line belongs to.
type CartOwner struct {
	Kind OwnerKind
	ID   string
}

// UserOwner returns the owner key for an authenticated user.
func UserOwner(userID uuid.UUID) CartOwner {
	return CartOwner{Kind: OwnerKindUser, ID: userID.String()}
}

// SessionOwner returns the owner key for a guest session token.
func SessionOwner(token string) CartOwner {
	return CartOwner{Kind: OwnerKindSession, ID: strings.TrimSpace(token)}
}

// IsValid reports whether the owner has a known kind and a non-empty ID.
func (o CartOwner) IsValid() bool {
	return o.Kind.IsValid() && o.ID != ""
}

// String renders the owner as "kind:id".
func (o CartOwner) String() string {
	return o.Kind.String() + ":" + o.ID
}
