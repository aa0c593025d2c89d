package routes

import (
	"github.com/gin-gonic/gin"

	"itdesk/internal/interfaces/http/handlers/kb"
	"itdesk/internal/interfaces/http/middleware"
)

// KBRouteConfig holds dependencies for knowledge base routes.
type KBRouteConfig struct {
	KBHandler *kb.KBHandler
	AdminAuth *middleware.AdminAuthMiddleware
}

// SetupKBRoutes configures knowledge base routes. Articles are readable by
// anyone; only admins manage them.
func SetupKBRoutes(api *gin.RouterGroup, cfg *KBRouteConfig) {
	articles := api.Group("/kb")
	{
		articles.GET("", cfg.KBHandler.List)
		articles.GET("/:id", cfg.KBHandler.Get)

		articles.POST("", cfg.AdminAuth.RequireAdmin(), cfg.KBHandler.Create)
		articles.PATCH("/:id", cfg.AdminAuth.RequireAdmin(), cfg.KBHandler.Update)
		articles.DELETE("/:id", cfg.AdminAuth.RequireAdmin(), cfg.KBHandler.Delete)
	}
}
