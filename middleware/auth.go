// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminCookieName is the session cookie carrying the admin token
const AdminCookieName = "admin_token"

// AdminRequired gates admin routes. The session token comes from the admin
// cookie or an Authorization bearer header and must carry an admin claim
// signed with the session secret.
func AdminRequired(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := adminToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(sessionSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["admin"] != true {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
			return
		}

		c.Next()
	}
}

func adminToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AdminCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
