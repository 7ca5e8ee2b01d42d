package v1

import (
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const claimsKey = "session_claims"

// AuthMiddleware requires a valid, unrevoked Bearer token and stores its claims
// in the request context
func AuthMiddleware(auth users.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			abortWithError(ctx, users.ErrInvalidToken, "authentication required")
			return
		}

		claims, err := auth.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			abortWithError(ctx, err, "invalid or expired session")
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireAdmin rejects sessions whose role may not manage the site. It must
// run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := SessionClaims(ctx)
		if claims == nil {
			abortWithError(ctx, users.ErrInvalidToken, "authentication required")
			return
		}
		if claims.Role != users.RoleAdmin {
			abortWithError(ctx, users.ErrForbidden, "access denied: admin privileges required")
			return
		}
		ctx.Next()
	}
}

// SessionClaims returns the claims stored by AuthMiddleware, or nil
func SessionClaims(ctx *gin.Context) *users.Claims {
	v, ok := ctx.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*users.Claims)
	return claims
}
