package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/longchau/pharmacy-web/internal/interface/http"
)

// PagesModule wires the render-only storefront pages.
type PagesModule struct {
	Handler *handlers.PagesHandler
}

func NewPagesModule(h *handlers.PagesHandler) *PagesModule {
	return &PagesModule{Handler: h}
}

func (m *PagesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/cart", m.Handler.Cart)
	rg.GET("/checkout", m.Handler.Checkout)
	rg.GET("/simple-login", m.Handler.SimpleLogin)
	rg.GET("/test-checkbox", m.Handler.TestCheckbox)
}
