package routes

import (
	"github.com/gin-gonic/gin"

	"itdesk/internal/interfaces/http/handlers/setting"
	"itdesk/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds dependencies for settings routes.
type SettingRouteConfig struct {
	SettingHandler *setting.SettingHandler
	AdminAuth      *middleware.AdminAuthMiddleware
}

// SetupSettingRoutes configures settings routes. The read is public so the
// intake form can show the system name; the password hash never leaves the
// use case. Writes require an admin session.
func SetupSettingRoutes(api *gin.RouterGroup, cfg *SettingRouteConfig) {
	settings := api.Group("/settings")
	{
		settings.GET("", cfg.SettingHandler.Get)
		settings.POST("", cfg.AdminAuth.RequireAdmin(), cfg.SettingHandler.Update)
	}
}
