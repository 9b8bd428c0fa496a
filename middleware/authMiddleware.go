package middleware

import (
	"net/http"

	"warmindo-pos/helpers"

	"github.com/gin-gonic/gin"
)

func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("uid", claims.Uid)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// writerRoles are the roles allowed to mutate orders and master data.
// Everything else is read-only; the store-facing handlers rely on this
// middleware as the deny-by-default gate.
var writerRoles = map[string]bool{
	"admin":   true,
	"manager": true,
	"cashier": true,
}

func RequireWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !writerRoles[role] {
			c.JSON(http.StatusForbidden, gin.H{"error": "your role is read-only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
