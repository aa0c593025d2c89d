package routes

import (
	"github.com/gin-gonic/gin"

	"itdesk/internal/interfaces/http/handlers/ticket"
	"itdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler *ticket.TicketHandler
	AdminAuth     *middleware.AdminAuthMiddleware
}

// SetupTicketRoutes configures ticket routes. Creating a ticket and checking
// its status are open to walk-in users; everything else is admin-only.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("/:id", cfg.TicketHandler.GetTicket)

		tickets.GET("", cfg.AdminAuth.RequireAdmin(), cfg.TicketHandler.ListTickets)
		tickets.PATCH("/:id", cfg.AdminAuth.RequireAdmin(), cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", cfg.AdminAuth.RequireAdmin(), cfg.TicketHandler.DeleteTicket)
	}

	api.GET("/stats", cfg.AdminAuth.RequireAdmin(), cfg.TicketHandler.GetStats)
}
