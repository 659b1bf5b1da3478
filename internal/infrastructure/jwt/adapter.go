package jwt

import (
	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateSessionToken issues a session token for a principal.
func (a *JWTServiceAdapter) GenerateSessionToken(principalID string, role entity.PrincipalRole) (string, error) {
	return a.mgr.GenerateToken(principalID, string(role))
}

// ParseSessionToken validates a session token and returns Claims.
func (a *JWTServiceAdapter) ParseSessionToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		PrincipalID:      customClaims.Subject,
		Role:             entity.PrincipalRole(customClaims.Role),
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}
