package middleware

import (
	"strings"

	"headless-cms/access"
	"headless-cms/config"
	"headless-cms/helper"
	"headless-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

const identityKey = "identity"

type Claims struct {
	UserID uint     `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		roles := make(models.RoleList, len(claims.Roles))
		for i, role := range claims.Roles {
			roles[i] = models.UserRole(role)
		}

		c.Set(identityKey, &access.Identity{
			UserID: claims.UserID,
			Roles:  roles,
		})

		c.Next()
	}
}

// IdentityFromContext returns the authenticated caller, or nil on
// unauthenticated (public) routes.
func IdentityFromContext(c *gin.Context) *access.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	ident, ok := value.(*access.Identity)
	if !ok {
		return nil
	}
	return ident
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.IsAdmin(IdentityFromContext(c)) {
			HTTPHelper.SendUnauthorizedError(c, "Admin role required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}
		c.Next()
	}
}
