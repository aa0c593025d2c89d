package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itdesk/internal/interfaces/http/middleware"
	"itdesk/internal/interfaces/http/routes"
)

// Router owns the Gin engine and route registration.
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter creates the HTTP router on top of a wired container.
func NewRouter(container *Container) *Router {
	gin.SetMode(container.cfg.Server.Mode)

	return &Router{
		engine:    gin.New(),
		container: container,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: c.authHandler,
		AdminAuth:   c.adminAuth,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: c.ticketHandler,
		AdminAuth:     c.adminAuth,
	})
	routes.SetupMasterDataRoutes(api, &routes.MasterDataRouteConfig{
		MasterDataHandler: c.masterDataHandler,
		AdminAuth:         c.adminAuth,
	})
	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		SettingHandler: c.settingHandler,
		AdminAuth:      c.adminAuth,
	})
	routes.SetupKBRoutes(api, &routes.KBRouteConfig{
		KBHandler: c.kbHandler,
		AdminAuth: c.adminAuth,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
