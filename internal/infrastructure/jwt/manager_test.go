package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/infrastructure/jwt"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)

	token, err := mgr.GenerateToken("user-123", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "user", claims.Role)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)
	other := jwt.NewJWTManager("other-secret", time.Hour)

	token, err := mgr.GenerateToken("user-123", "user")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.GenerateToken("user-123", "user")
	require.NoError(t, err)

	_, err = mgr.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyGarbageToken(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)

	_, err := mgr.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestSessionTokenAdapterPreservesRole(t *testing.T) {
	svc := jwt.NewJWTService(jwt.NewJWTManager("test-secret", time.Hour))

	token, err := svc.GenerateSessionToken("partner-9", entity.RolePartner)
	require.NoError(t, err)

	claims, err := svc.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "partner-9", claims.PrincipalID)
	assert.Equal(t, entity.RolePartner, claims.Role)
}
