package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-restaurant-orders/helpers"
)

// Authentication verifies the presented credential and attaches the subject's
// identity and role to the request context.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			// Also accept the conventional Authorization: Bearer header.
			authHeader := c.Request.Header.Get("Authorization")
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				clientToken = parts[1]
			}
		}
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden - Invalid Token"})
			c.Abort()
			return
		}

		c.Set("uid", claims.Uid)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole gates a mutating route on a minimum privilege level. It composes
// after Authentication, which stores the subject's role in the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden - Insufficient privileges"})
		c.Abort()
	}
}
