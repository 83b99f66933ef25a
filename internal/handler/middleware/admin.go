package middleware

import (
	"github.com/gin-gonic/gin"

	jwtpkg "wedding/guesthub/pkg/jwt"
)

// OptionalJWTAuth attaches admin claims when a valid token is presented and
// lets anonymous requests through otherwise. Handlers that serve extra data
// to admins check AdminClaims themselves.
func OptionalJWTAuth(jwtManager *jwtpkg.Manager, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if claims, _ := authenticate(c, jwtManager, revocations); claims != nil {
				c.Set(ContextKeyAdminClaims, claims)
			}
		}
		c.Next()
	}
}
