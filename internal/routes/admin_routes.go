package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/controllers"
	"github.com/AK301382/maser/internal/middleware"
)

func AdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/roads/pending", controllers.PendingRoads)
		admin.PUT("/roads/:id/approve", controllers.ApproveRoad)
		admin.PUT("/roads/:id/reject", controllers.RejectRoad)

		admin.GET("/pois/pending", controllers.PendingPOIs)
		admin.PUT("/pois/:id/approve", controllers.ApprovePOI)
		admin.PUT("/pois/:id/reject", controllers.RejectPOI)

		admin.POST("/notifications/broadcast", controllers.BroadcastNotification)
		admin.GET("/stats", controllers.AdminStats)
	}
}
