package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rencontre/config"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestConfig())

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, hasher.Check("s3cret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RejectsRefreshTokenAsAccess(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, refresh, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret and type.
	_, err = svc.ValidateToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access + "x")
	assert.Error(t, err)
}
