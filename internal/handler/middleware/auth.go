package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	jwtpkg "wedding/guesthub/pkg/jwt"
	"wedding/guesthub/pkg/response"
)

const ContextKeyAdminClaims = "admin_claims"

// RevocationChecker reports whether a token ID has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTAuth requires a valid, unrevoked admin bearer token.
func JWTAuth(jwtManager *jwtpkg.Manager, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, msg := authenticate(c, jwtManager, revocations)
		if claims == nil {
			response.Unauthorized(c, msg)
			c.Abort()
			return
		}
		c.Set(ContextKeyAdminClaims, claims)
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtManager *jwtpkg.Manager, revocations RevocationChecker) (*jwtpkg.Claims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "missing authorization header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "invalid authorization format"
	}

	claims, err := jwtManager.Validate(parts[1])
	if err != nil {
		return nil, "invalid or expired token"
	}

	if revocations != nil {
		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			return nil, "invalid or expired token"
		}
	}
	return claims, ""
}

// AdminClaims returns the claims stored by JWTAuth or OptionalJWTAuth.
func AdminClaims(c *gin.Context) (*jwtpkg.Claims, bool) {
	v, exists := c.Get(ContextKeyAdminClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwtpkg.Claims)
	return claims, ok
}
