package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/controllers"
	"github.com/AK301382/maser/internal/middleware"
)

func AuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middleware.RequireAuth(), controllers.Me)
	}
}
