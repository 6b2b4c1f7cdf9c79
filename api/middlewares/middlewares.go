package middlewares

import (
	"net/http"
	"net/url"

	"Postboard/api/auth"
	"Postboard/api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionMiddleware resolves the session cookie into the current user. It
// never aborts; anonymous browsing is allowed everywhere except the write
// paths guarded by LoginRequired.
func SessionMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.ExtractTokenID(c.Request)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		if err := db.Select("id", "username", "email").First(&user, userID).Error; err != nil {
			c.Next()
			return
		}

		c.Set("userID", userID)
		c.Set("viewer", &user)
		c.Next()
	}
}

// LoginRequired redirects anonymous users to the login page, carrying the
// original URL in the next parameter so the flow can resume after login.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("userID"); !exists {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/auth/login/?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
