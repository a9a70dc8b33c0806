package router

import "github.com/gin-gonic/gin"

// Module is a storefront feature (pages, auth, profile, debug) that
// registers its own routes, including any per-route rate limiters and
// auth guards, on the shared RouterGroup.
type Module interface {
	Register(rg *gin.RouterGroup)
}
