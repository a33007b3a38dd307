package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/controllers"
	"github.com/AK301382/maser/internal/middleware"
)

func POIRoutes(api *gin.RouterGroup) {
	pois := api.Group("/pois")
	{
		pois.POST("", middleware.RequireAuth(), controllers.SubmitPOI)
		pois.GET("", controllers.ListPOIs)
		pois.GET("/user", middleware.RequireAuth(), controllers.UserPOIs)
		pois.GET("/approved", controllers.ApprovedPOIs)
	}
}
