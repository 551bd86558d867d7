package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/server/auth"
	"github.com/talentumplus/talentum/internal/server/models"
)

// Context keys set by AuthMiddleware.
const (
	ctxEmail = "Email"
	ctxRol   = "Rol"
)

// AuthMiddleware verifies the bearer token and stores the caller's identity
// in the gin context. Missing, malformed and expired tokens all end in 401.
func AuthMiddleware(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "empty authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			newErrorResponse(c, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		claims, err := auth.ParseToken(parts[1], jwtKey)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				newErrorResponse(c, http.StatusUnauthorized, "token expired")
				return
			}
			newErrorResponse(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(ctxEmail, claims.Subject)
		c.Set(ctxRol, claims.Rol)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allow list.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rol := c.GetString(ctxRol)
		for _, allowed := range roles {
			if rol == allowed {
				c.Next()
				return
			}
		}
		newErrorResponse(c, http.StatusForbidden, "insufficient role")
	}
}

// RequireSelfOrAdmin limits a route to the account named by the path
// parameter, or to admins.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString(ctxEmail)
		if caller == c.Param(param) || c.GetString(ctxRol) == models.RoleAdmin {
			c.Next()
			return
		}
		newErrorResponse(c, http.StatusForbidden, "not your account")
	}
}

func callerIdentity(c *gin.Context) (email string, rol string) {
	return c.GetString(ctxEmail), c.GetString(ctxRol)
}
