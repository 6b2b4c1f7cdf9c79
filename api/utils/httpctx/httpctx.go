package httpctx

import (
	"Postboard/api/models"

	"github.com/gin-gonic/gin"
)

// CurrentUserID retrieves the authenticated user ID from Gin context if present.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	uid, ok := val.(uint)
	return uid, ok
}

// CurrentUser retrieves the authenticated user loaded by the session
// middleware, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("viewer")
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
