package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated username from the request
// context. The boolean reports whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the
// request context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	role, ok := c.Request.Context().Value(userRoleKey).(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
