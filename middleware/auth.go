// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	trainerRepo "tutorbase/database/repository/trainer"
	"tutorbase/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthTrainerMiddleware authenticates trainer-scoped endpoints. The
// token hash must match the one stored for the trainer, so revoking a
// token server-side invalidates it immediately.
func JWTAuthTrainerMiddleware(repo trainerRepo.TrainerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		trainer, err := repo.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil || trainer == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or trainer not found"})
			return
		}

		c.Set("trainerID", trainer.ID)
		c.Next()
	}
}

// JWTAuthAdminMiddleware authenticates admin-only endpoints by the role
// claim on the token.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if utils.TokenRole(token) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}
