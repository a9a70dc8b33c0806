package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/longchau/pharmacy-web/pkg/forms"
)

// Payload is the JSON envelope the storefront JavaScript consumes.
// Field-validation and credential failures still answer 200 with
// success:false; the success flag, not the status code, drives the UI.
type Payload struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	RedirectURL string       `json:"redirect_url,omitempty"`
	Errors      forms.Errors `json:"errors,omitempty"`
}

func Success(c *gin.Context, message, redirectURL string) {
	c.JSON(http.StatusOK, Payload{Success: true, Message: message, RedirectURL: redirectURL})
}

func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Payload{Success: false, Message: message})
}

func ValidationFailed(c *gin.Context, errs forms.Errors) {
	c.JSON(http.StatusOK, Payload{Success: false, Message: "Validation failed", Errors: errs})
}

// Unauthorized is used by the auth guard for background (XHR) callers.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Payload{Success: false, Message: message})
}
