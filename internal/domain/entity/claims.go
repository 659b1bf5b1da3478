package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated principal extracted from a session token.
type Claims struct {
	PrincipalID string
	Role        PrincipalRole
	jwt.RegisteredClaims
}
