package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/longchau/pharmacy-web/internal/session"
	"github.com/longchau/pharmacy-web/pkg/helpers"
	"github.com/longchau/pharmacy-web/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey       = "userID"
	CtxUserNameKey     = "userName"
	CtxUserEmailKey    = "userEmail"
	CtxSessionTokenKey = "sessionToken"
)

// Auth resolves the session cookie against the store and injects the
// user identity into the Gin context. Anonymous browser navigation is
// redirected to /login; background (XHR/JSON) callers get a 401.
func Auth(store session.Store, cookies *helpers.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookies.SessionToken(c)
		data, err := store.Get(c.Request.Context(), token)
		if err != nil || data == nil {
			if IsBackgroundRequest(c) {
				response.Unauthorized(c, "Authentication required.")
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, data.UserID)
		c.Set(CtxUserNameKey, data.Name)
		c.Set(CtxUserEmailKey, data.Email)
		c.Set(CtxSessionTokenKey, token)
		c.Next()
	}
}

// IsBackgroundRequest reports whether the request looks like a
// programmatic call rather than direct browser navigation.
func IsBackgroundRequest(c *gin.Context) bool {
	if strings.EqualFold(c.GetHeader("X-Requested-With"), "XMLHttpRequest") {
		return true
	}
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
		return true
	}
	return strings.HasPrefix(c.ContentType(), "application/json")
}
