package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/longchau/pharmacy-web/internal/container"
	handlers "github.com/longchau/pharmacy-web/internal/interface/http"
	"github.com/longchau/pharmacy-web/internal/interface/middleware"
)

// AuthModule wires the account endpoints:
// Public:    GET|POST /register, GET|POST /login, GET /check-email
// Protected: GET|POST /logout (any verb terminates the session)
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	registerLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), nil)
	checkEmailLimiter := middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/register", m.Handler.RegisterPage)
	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.GET("/login", m.Handler.LoginPage)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/check-email", checkEmailLimiter, m.Handler.CheckEmail)

	// Logout requires an existing session; the guard redirects
	// anonymous browser requests to /login.
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), container.GetCookies()))
	{
		auth.GET("/logout", m.Handler.Logout)
		auth.POST("/logout", m.Handler.Logout)
	}
}
