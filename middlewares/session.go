package middlewares

import (
	"strings"

	"backend/pkg/resp"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Session-Token"

// sessionToken reads the customer session token from the dedicated header,
// a bearer header, or the query string (websocket clients).
func sessionToken(c *gin.Context) string {
	if t := c.GetHeader(sessionHeader); t != "" {
		return t
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("session_token")
}

// SessionMiddleware resolves the customer session token into explicit
// tableId/customerName context values. Cart and checkout handlers read those
// instead of any ambient per-process session state.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			resp.ValidationError(c, "session", "Session tidak ditemukan. Silakan pilih meja terlebih dahulu.")
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(tokenStr, secret)
		if err != nil {
			resp.ValidationError(c, "session", "Session tidak ditemukan. Silakan pilih meja terlebih dahulu.")
			c.Abort()
			return
		}

		c.Set("tableId", claims.TableID)
		c.Set("customerName", claims.CustomerName)
		c.Next()
	}
}

// OptionalSessionMiddleware sets the context values when a valid token is
// present and passes through otherwise. Legacy endpoints accept table_id in
// the request body as an alternative.
func OptionalSessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := sessionToken(c); tokenStr != "" {
			if claims, err := utils.ParseSessionToken(tokenStr, secret); err == nil {
				c.Set("tableId", claims.TableID)
				c.Set("customerName", claims.CustomerName)
			}
		}
		c.Next()
	}
}
