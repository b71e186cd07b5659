package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the only token type accepted on cart and order routes.
const TokenTypeAccess = "access"

// Claims identifies the shopper or operator behind a request. Roles carries
// raw claim values; unknown roles are kept and ignored by authorization.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService verifies bearer tokens minted by the identity provider. This
// service never issues tokens.
type TokenService interface {
	ValidateToken(tokenString string) (*Claims, error)
}
