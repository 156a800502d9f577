package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/services"
	"github.com/manoja-HA/nexus-banking-platform/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	SetExposeErrorDetails(cfg.ExposeErrorDetails)

	// Add health check route
	r.GET("/health", getHealth)

	setupAPIRoutes(r, services)
}

// setupAPIRoutes delegates route registration to the per-entity handlers
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("")

	registerCustomerRoutes(api, services.Customer)
	registerAccountRoutes(api, services.Account)
	registerTransferRoutes(api, services.Transfer)
}
