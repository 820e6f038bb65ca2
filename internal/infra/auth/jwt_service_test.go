package auth

import (
	"testing"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	userID := uuid.New()
	roles := []string{entity.RoleDeliverer, entity.RoleClient}

	token, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer := newTestTokenService(t, "issuer-secret")
	verifier := newTestTokenService(t, "other-secret")

	token, err := issuer.GenerateAccessToken(uuid.New(), []string{entity.RoleClient})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}
