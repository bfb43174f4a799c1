package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Public routes
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.GET("/health", h.healthCheck)

	// Everything below requires a valid bearer token
	protected := api.Group("")
	protected.Use(AuthMiddleware(h.tokens, h.logger))
	{
		protected.POST("/checkin-request", h.checkinRequest)
		protected.POST("/checkin", h.checkin)
		protected.GET("/checkin-history", h.checkinHistory)
		protected.GET("/locations", h.listLocations)
	}
}
