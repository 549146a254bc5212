package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const contextUserID = "userID"

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Auth validates a Bearer token and stores the caller's user ID in the
// context for downstream handlers. Token issuance lives with the
// identity provider; this service only verifies.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be in the format: Bearer {token}"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID := claims.UserID
		if userID == "" {
			userID = claims.Subject
		}
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries no user identity"})
			c.Abort()
			return
		}
		c.Set(contextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID set by Auth, or "" when the
// request skipped authentication.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(contextUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
