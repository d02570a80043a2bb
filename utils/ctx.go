package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the user id stored by the auth middleware. It
// tolerates the numeric types a decoded token claim may carry and
// returns 0 when no user is set.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole reads the role set by the auth middleware, or "" when
// the request is anonymous.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
