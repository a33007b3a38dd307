package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/controllers"
	"github.com/AK301382/maser/internal/middleware"
)

func NotificationRoutes(api *gin.RouterGroup) {
	notifs := api.Group("/notifications")
	notifs.Use(middleware.RequireAuth())
	{
		notifs.GET("", controllers.ListNotifications)
		notifs.PUT("/:id/read", controllers.MarkNotificationRead)
	}
}
