package middlewares

import (
	"strings"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards admin routes: bearer JWT, then a token-version check
// against the admin row so revoked tokens die even before they expire.
func AuthMiddleware(secret string, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "Token tidak ditemukan")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseAdminToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "Token tidak valid")
			c.Abort()
			return
		}

		admin, err := auth.VerifyToken(claims)
		if err != nil {
			resp.Unauthorized(c, "Token tidak valid")
			c.Abort()
			return
		}

		c.Set("adminId", admin.ID)
		c.Set("adminUsername", admin.Username)
		c.Next()
	}
}
