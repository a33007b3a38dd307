package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/middleware"
	"github.com/AK301382/maser/internal/models"
	"github.com/AK301382/maser/internal/services"
)

// SubmitPOI creates a pending point of interest for the authenticated user.
func SubmitPOI(c *gin.Context) {
	var input services.POIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("SubmitPOI: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	poi, err := submissions().SubmitPOI(middleware.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"poi": poi})
}

// ListPOIs returns POIs with optional ?status and ?category filters,
// paginated.
func ListPOIs(c *gin.Context) {
	page, pageSize := pagination(c)

	query := config.DB.Model(&models.POI{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting places: " + err.Error()})
		return
	}

	var pois []models.POI
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&pois).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing places: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       pois,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages(total, pageSize),
	})
}

// UserPOIs lists the authenticated user's own POI submissions.
func UserPOIs(c *gin.Context) {
	pois, err := submissions().UserPOIs(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing places: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pois": pois})
}

// ApprovedPOIs is the navigation-view snapshot for places.
func ApprovedPOIs(c *gin.Context) {
	pois, err := moderation().ApprovedPOIs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing places: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pois": pois})
}
