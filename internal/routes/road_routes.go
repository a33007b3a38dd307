package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/controllers"
	"github.com/AK301382/maser/internal/middleware"
)

func RoadRoutes(api *gin.RouterGroup) {
	roads := api.Group("/roads")
	{
		roads.POST("", middleware.RequireAuth(), controllers.SubmitRoad)
		roads.GET("", controllers.ListRoads)
		roads.GET("/user", middleware.RequireAuth(), controllers.UserRoads)
		roads.GET("/approved", controllers.ApprovedRoads)
	}
}
