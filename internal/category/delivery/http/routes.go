package http

import (
	"github.com/gin-gonic/gin"

	"lifedesk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	categories := rg.Group("/categories")
	{
		categories.POST("", mw.Auth(), h.Create)
		categories.GET("", mw.Auth(), h.List)
		categories.GET("/:id", mw.Auth(), h.Detail)
		categories.PUT("/:id", mw.Auth(), h.Update)
		categories.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
