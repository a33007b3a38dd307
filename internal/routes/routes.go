package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/middleware"
)

// SetupRouter registers every route group under the /api prefix.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimit())

	api := r.Group("/api")

	api.GET("/", healthRoot)
	api.GET("/health", healthCheck)

	AuthRoutes(api)
	RoadRoutes(api)
	POIRoutes(api)
	LocationRoutes(api)
	NotificationRoutes(api)
	AdminRoutes(api)

	return r
}

func healthRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "MASER - crowd-sourced mapping platform",
		"status":  "healthy",
	})
}

func healthCheck(c *gin.Context) {
	dbStatus := "healthy"
	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "unhealthy"
	}
	status := "healthy"
	if dbStatus != "healthy" {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}
