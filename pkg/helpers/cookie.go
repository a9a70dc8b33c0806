package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Manager sets and clears the session and flash cookies.
type Manager struct {
	SessionName string
	FlashName   string
	Domain      string
	Secure      bool
}

func NewCookie(sessionName, flashName, domain string, secure bool) *Manager {
	return &Manager{SessionName: sessionName, FlashName: flashName, Domain: domain, Secure: secure}
}

// SetSession stores the session token. maxAge 0 means a browser-session
// cookie (no Max-Age attribute), matching the non-remember-me policy.
func (m *Manager) SetSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.SessionName, token, maxAge, "/", m.Domain, m.Secure, true)
}

func (m *Manager) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.SessionName, "", -1, "/", m.Domain, m.Secure, true)
}

// SessionToken reads the session token from the request, empty if absent.
func (m *Manager) SessionToken(c *gin.Context) string {
	token, err := c.Cookie(m.SessionName)
	if err != nil {
		return ""
	}
	return token
}

// FlashToken returns the flash token for this client, minting a new
// browser-session cookie when none exists yet.
func (m *Manager) FlashToken(c *gin.Context) (string, error) {
	if token, err := c.Cookie(m.FlashName); err == nil && token != "" {
		return token, nil
	}
	token, err := GenToken(16)
	if err != nil {
		return "", err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.FlashName, token, 0, "/", m.Domain, m.Secure, true)
	return token, nil
}
