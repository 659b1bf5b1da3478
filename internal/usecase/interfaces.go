package usecase

import (
	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// JWTService defines the interface for session token operations.
type JWTService interface {
	GenerateSessionToken(principalID string, role entity.PrincipalRole) (string, error)
	ParseSessionToken(token string) (*entity.Claims, error)
}
