package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finpace/internal/errors"
	"finpace/internal/models"
)

// RequireOwner lets viewers read but not write. It must run after
// AuthMiddleware.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		role, _ := c.Get(RoleKey)
		if r, ok := role.(models.UserRole); ok && r == models.UserRoleOwner {
			c.Next()
			return
		}

		abortWithError(c, apperrors.WithMessage(apperrors.ErrForbidden, "Viewers have read-only access"))
	}
}
