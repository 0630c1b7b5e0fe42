package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hguir/sellio/models"
)

// Context keys populated by RequireAuth.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// RequireAuth validates the Bearer token and stores the session's
// user id, email and role in the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			c.Abort()
			return
		}

		userID, _ := claims[CtxUserID].(string)
		email, _ := claims[CtxEmail].(string)
		roleStr, _ := claims[CtxRole].(string)
		role, err := models.ParseRole(roleStr)
		if userID == "" || err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxEmail, email)
		c.Set(CtxRole, role)

		c.Next()
	}
}

// RequireRole guards a route group behind a single role. Must run after RequireAuth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(CtxRole)
		if !ok || got.(models.Role) != role {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUserID returns the authenticated user's id from the context.
func SessionUserID(c *gin.Context) string {
	id, _ := c.Get(CtxUserID)
	s, _ := id.(string)
	return s
}
