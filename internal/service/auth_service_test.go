package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding/guesthub/internal/repository"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

func newAuthService(t *testing.T) (AuthService, *jwtpkg.Manager) {
	t.Helper()
	fx := newFixture(t)
	manager := jwtpkg.NewManager("test-signing-key", "guesthub", time.Hour)
	return NewAuthService(fx.admins, repository.NewMemoryStateStore(), manager, fx.logger), manager
}

func TestAuthEnsureAdminAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, manager := newAuthService(t)

	created, err := svc.EnsureAdmin(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin", "other")
	require.NoError(t, err)
	assert.False(t, created)

	tokens, err := svc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)

	claims, err := manager.Validate(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = svc.Login(ctx, "admin", "other")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.EnsureAdmin(ctx, "", "x")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	svc, manager := newAuthService(t)

	_, err := svc.EnsureAdmin(ctx, "admin", "s3cret")
	require.NoError(t, err)
	tokens, err := svc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	claims, err := manager.Validate(tokens.AccessToken)
	require.NoError(t, err)

	revoked, err := svc.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(ctx, claims))

	revoked, err = svc.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}
