package routes

import (
	"github.com/gin-gonic/gin"

	"itdesk/internal/interfaces/http/handlers/auth"
	"itdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *auth.AuthHandler
	AdminAuth   *middleware.AdminAuthMiddleware
}

// SetupAuthRoutes configures admin authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", cfg.AuthHandler.Login)
		authGroup.POST("/logout", cfg.AuthHandler.Logout)
		authGroup.GET("/session", cfg.AdminAuth.RequireAdmin(), cfg.AuthHandler.Session)
	}
}
