package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/hive_reporting_system/internal/models"
)

// RegisterRoutes регистрирует маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	reporterOnly := RequireRole(models.RoleReporter)
	beekeeperOnly := RequireRole(models.RoleBeekeeper)

	reports := api.Group("/hive-reports")
	reports.Use(APIKeyAuthMiddleware(h.cfg, h.logger), MemberIdentityMiddleware(h.members, h.logger))
	{
		reports.GET("", h.listPins)
		reports.GET("/me", h.myReports)
		reports.POST("/image", reporterOnly, h.verifyImage)
		reports.POST("", reporterOnly, h.finalizeReport)
		reports.GET("/:id", h.reportDetail)
		reports.POST("/:id/reserve", beekeeperOnly, h.reserve)
		reports.DELETE("/:id/reserve-action/:actionId", beekeeperOnly, h.cancelReservation)
		reports.POST("/:id/proof", h.proof)
	}

	me := api.Group("/members/me")
	me.Use(APIKeyAuthMiddleware(h.cfg, h.logger), MemberIdentityMiddleware(h.members, h.logger))
	{
		me.GET("/notifications", h.notifications)
		me.GET("/interest-areas", beekeeperOnly, h.interestAreas)
		me.PUT("/interest-areas", beekeeperOnly, h.setInterestAreas)
	}
}
