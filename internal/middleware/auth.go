package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"photosite/internal/modules/auth"
	"photosite/internal/pkg/response"
)

// RequireAdmin gates a route group behind the session guard. While the
// guard is still verifying the initial session it answers 503 rather than
// 401, so clients can retry instead of bouncing to the login screen.
func RequireAdmin(guard *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		id, err := guard.Authenticate(parts[1])
		if err != nil {
			if err == auth.ErrSessionVerifying {
				response.Error(c, http.StatusServiceUnavailable, "SESSION_VERIFYING", "Session verification in progress, retry shortly")
			} else {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			}
			c.Abort()
			return
		}

		c.Set("uid", id.UID)
		c.Set("email", id.Email)
		c.Next()
	}
}
