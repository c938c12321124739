package middleware

import (
	"context"
	"strings"

	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID = "X-User-ID"
	CookieUserID = "userId"
)

// RequireUser stops the request unless the caller is logged in, i.e. sends a
// user id in the X-User-ID header or the userId cookie. The id is not
// verified here; the upstream API owns identity. The 401 is rendered by
// ErrorHandler.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			if cookie, err := c.Cookie(CookieUserID); err == nil {
				userID = strings.TrimSpace(cookie)
			}
		}

		if userID == "" {
			_ = c.Error(apperror.Unauthorized("Please log in to continue.").
				WithData(gin.H{"next_view": domain.ViewUserLogin}))
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyUserID, userID))
		c.Next()
	}
}
