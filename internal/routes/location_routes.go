package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/controllers"
	"github.com/AK301382/maser/internal/middleware"
)

func LocationRoutes(api *gin.RouterGroup) {
	locations := api.Group("/locations/personal")
	locations.Use(middleware.RequireAuth())
	{
		locations.POST("", controllers.CreatePersonalLocation)
		locations.GET("", controllers.ListPersonalLocations)
		locations.DELETE("/:id", controllers.DeletePersonalLocation)
	}
}
