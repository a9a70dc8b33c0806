package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/longchau/pharmacy-web/internal/container"
	handlers "github.com/longchau/pharmacy-web/internal/interface/http"
	"github.com/longchau/pharmacy-web/internal/interface/middleware"
)

// ProfileModule wires the authenticated profile pages and the JSON
// user search API.
type ProfileModule struct {
	Profile *handlers.ProfileHandler
	Users   *handlers.UserHandler
}

func NewProfileModule(p *handlers.ProfileHandler, u *handlers.UserHandler) *ProfileModule {
	return &ProfileModule{Profile: p, Users: u}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), container.GetCookies()))
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile", m.Profile.Show)
		auth.POST("/profile", m.Profile.Update)
		auth.POST("/profile/avatar", m.Profile.UploadAvatar)
		auth.GET("/api/users/search", m.Users.Search)
	}
}
