package routes

import (
	"github.com/gin-gonic/gin"

	"itdesk/internal/interfaces/http/handlers/masterdata"
	"itdesk/internal/interfaces/http/middleware"
)

// MasterDataRouteConfig holds dependencies for master data routes.
type MasterDataRouteConfig struct {
	MasterDataHandler *masterdata.MasterDataHandler
	AdminAuth         *middleware.AdminAuthMiddleware
}

// SetupMasterDataRoutes configures master data routes. The list endpoint is
// public so the intake form can populate its dropdowns; an attached admin
// session additionally unlocks the all=true inactive view.
func SetupMasterDataRoutes(api *gin.RouterGroup, cfg *MasterDataRouteConfig) {
	master := api.Group("/master-data")
	{
		master.GET("", cfg.AdminAuth.AttachSession(), cfg.MasterDataHandler.List)

		master.POST("", cfg.AdminAuth.RequireAdmin(), cfg.MasterDataHandler.Add)
		master.PATCH("/:id", cfg.AdminAuth.RequireAdmin(), cfg.MasterDataHandler.Rename)
		master.PATCH("/:id/active", cfg.AdminAuth.RequireAdmin(), cfg.MasterDataHandler.Toggle)
		master.DELETE("/:id", cfg.AdminAuth.RequireAdmin(), cfg.MasterDataHandler.Delete)
	}
}
