package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	jwtpkg "wedding/guesthub/pkg/jwt"
)

type failingCounter struct{}

func (failingCounter) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

type revokedSet map[string]bool

func (r revokedSet) IsRevoked(_ context.Context, jti string) (bool, error) {
	return r[jti], nil
}

func serve(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RateLimit(failingCounter{}, "test", 1, time.Minute, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, serve(r, "").Code)
	}
}

func TestJWTAuthRejectsRevokedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := jwtpkg.NewManager("k", "guesthub", time.Hour)
	token, claims, err := manager.GenerateAccessToken(1, "admin")
	require.NoError(t, err)

	revoked := revokedSet{}
	r := gin.New()
	r.GET("/", JWTAuth(manager, revoked), func(c *gin.Context) {
		got, ok := AdminClaims(c)
		require.True(t, ok)
		c.String(http.StatusOK, got.Username)
	})

	w := serve(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	revoked[claims.ID] = true
	assert.Equal(t, http.StatusUnauthorized, serve(r, token).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
}

func TestOptionalJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := jwtpkg.NewManager("k", "guesthub", time.Hour)
	token, _, err := manager.GenerateAccessToken(1, "admin")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", OptionalJWTAuth(manager, nil), func(c *gin.Context) {
		if _, ok := AdminClaims(c); ok {
			c.String(http.StatusOK, "admin")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	assert.Equal(t, "admin", serve(r, token).Body.String())
	assert.Equal(t, "anonymous", serve(r, "").Body.String())
	assert.Equal(t, "anonymous", serve(r, "garbage").Body.String())
}
