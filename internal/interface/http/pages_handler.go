package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/longchau/pharmacy-web/internal/session"
	"github.com/longchau/pharmacy-web/pkg/helpers"
)

// PagesHandler renders the storefront pages. They carry no business
// logic; the only dynamic bits are the signed-in name and pending
// flash messages.
type PagesHandler struct {
	Sessions session.Store
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
}

func NewPagesHandler(store session.Store, cookies *helpers.Manager, logger *logrus.Logger) *PagesHandler {
	return &PagesHandler{Sessions: store, Cookies: cookies, Logger: logger}
}

func (h *PagesHandler) render(c *gin.Context, tmpl, title string) {
	data := gin.H{"title": title}

	if token := h.Cookies.SessionToken(c); token != "" {
		if s, err := h.Sessions.Get(c.Request.Context(), token); err == nil {
			data["userName"] = s.Name
		}
	}
	if token, err := c.Cookie(h.Cookies.FlashName); err == nil && token != "" {
		if flashes, err := h.Sessions.PopFlashes(c.Request.Context(), token); err == nil && len(flashes) > 0 {
			data["flashes"] = flashes
		}
	}

	c.HTML(http.StatusOK, tmpl, data)
}

func (h *PagesHandler) Home(c *gin.Context)     { h.render(c, "index.html", "Long Châu Pharmacy") }
func (h *PagesHandler) Cart(c *gin.Context)     { h.render(c, "cart.html", "Your cart") }
func (h *PagesHandler) Checkout(c *gin.Context) { h.render(c, "checkout.html", "Checkout") }

// Legacy test pages kept from the storefront prototype.
func (h *PagesHandler) SimpleLogin(c *gin.Context)  { h.render(c, "simple_login.html", "Sign in") }
func (h *PagesHandler) TestCheckbox(c *gin.Context) { h.render(c, "test_checkbox.html", "Checkbox test") }
