package http

import (
	"github.com/gin-gonic/gin"

	"lifedesk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Preview is additionally rate-limited per client IP since UIs call it
// on every keystroke.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.Auth(), h.Create)
		items.GET("", mw.Auth(), h.List)
		items.GET("/:id", mw.Auth(), h.Detail)
		items.PUT("/:id", mw.Auth(), h.Update)
		items.DELETE("/:id", mw.Auth(), h.Delete)
		items.POST("/:id/complete", mw.Auth(), h.Complete)
	}

	quickadd := rg.Group("/quickadd")
	{
		quickadd.POST("", mw.Auth(), h.QuickAdd)
		quickadd.POST("/preview", mw.Auth(), mw.RateLimit(), h.Preview)
	}
}
