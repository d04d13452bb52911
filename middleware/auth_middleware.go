package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/services"
	"github.com/skillswap-platform/utils"
)

const userContextKey = "currentUser"

// RequireAuth authenticates the bearer credential through the auth gate and
// stores the resolved user on the request context.
func RequireAuth(gate *services.AuthGate) gin.HandlerFunc {
	return authorize(gate, "")
}

// RequireAdmin is RequireAuth plus an admin role check.
// It must be used in place of RequireAuth, not after it.
func RequireAdmin(gate *services.AuthGate) gin.HandlerFunc {
	return authorize(gate, models.RoleAdmin)
}

func authorize(gate *services.AuthGate, requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential, err := bearerToken(c)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		user, err := gate.Authorize(c.Request.Context(), credential, requiredRole)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", apperrors.New(apperrors.KindMalformedToken, "missing Authorization header")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", apperrors.New(apperrors.KindMalformedToken, "Authorization header must use the Bearer scheme")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", apperrors.New(apperrors.KindMalformedToken, "missing bearer token")
	}
	return token, nil
}
