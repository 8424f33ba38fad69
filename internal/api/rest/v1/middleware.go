package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/cache"
)

const claimsContextKey = "auth_claims"

// AuthMiddleware validates the Bearer token, rejects revoked token ids and
// stores the claims on the request context.
func AuthMiddleware(secret string, tokenStore cache.TokenStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token"})
			return
		}

		revoked, err := tokenStore.IsRevoked(ctx, claims.ID)
		if err != nil || revoked {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "token no longer valid"})
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

// RequireRoles allows only the named roles past.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := claimsFrom(ctx)
		if claims == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient permissions"})
	}
}

func claimsFrom(ctx *gin.Context) *auth.Claims {
	value, ok := ctx.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// restaurantScope resolves this request's accessible restaurant ids from
// the account behind the token. all is true for super admins.
func restaurantScope(ctx *gin.Context, authService users.AuthService) (ids []uint, all bool, err error) {
	claims := claimsFrom(ctx)
	if claims == nil {
		return nil, false, nil
	}
	if claims.Role == users.RoleSuperAdmin {
		return nil, true, nil
	}
	account, err := authService.Account(ctx, claims.AccountType, claims.AccountID)
	if err != nil {
		return nil, false, err
	}
	return account.RestaurantIDs, false, nil
}

func scopeContains(ids []uint, all bool, restaurantID uint) bool {
	if all {
		return true
	}
	for _, id := range ids {
		if id == restaurantID {
			return true
		}
	}
	return false
}
