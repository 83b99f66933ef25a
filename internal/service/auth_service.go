package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
	"wedding/guesthub/pkg/crypto"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

const revokedTokenKeyPrefix = "revoked_jti:"

// TokenSet is returned after a successful admin login.
type TokenSet struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenSet, error)
	// Logout revokes the token until it would have expired anyway.
	Logout(ctx context.Context, claims *jwtpkg.Claims) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// EnsureAdmin creates the admin account when it does not exist yet.
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	stateStore repository.StateStore
	jwtManager *jwtpkg.Manager
	logger     *zap.Logger
	now        func() time.Time
}

func NewAuthService(
	adminRepo repository.AdminRepository,
	stateStore repository.StateStore,
	jwtManager *jwtpkg.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		stateStore: stateStore,
		jwtManager: jwtManager,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*TokenSet, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if !crypto.CheckPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.jwtManager.GenerateAccessToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	s.logger.Info("admin logged in", zap.Uint("admin_id", admin.ID))

	return &TokenSet{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwtpkg.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.stateStore.Set(ctx, revokedTokenKeyPrefix+claims.ID, []byte("1"), ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *authService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	return s.stateStore.Exists(ctx, revokedTokenKeyPrefix+jti)
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, invalid("admin username and password are required")
	}
	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("get admin: %w", err)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if err := s.adminRepo.Create(ctx, &model.Admin{Username: username, PasswordHash: hash}); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

var _ AuthService = (*authService)(nil)
