package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/geo"
	"github.com/AK301382/maser/internal/middleware"
	"github.com/AK301382/maser/internal/models"
)

// CreatePersonalLocation saves a private place for the authenticated user.
// Personal locations skip moderation entirely.
func CreatePersonalLocation(c *gin.Context) {
	var input struct {
		Name string  `json:"name" binding:"required"`
		Lat  float64 `json:"lat"`
		Lng  float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || len(input.Name) > config.MaxLocationName {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must be 1 to 100 characters"})
		return
	}
	if err := geo.ValidatePoint(input.Lat, input.Lng); err != nil {
		respondError(c, err)
		return
	}

	loc := models.PersonalLocation{
		UserID: middleware.UserID(c),
		Name:   input.Name,
		Lat:    input.Lat,
		Lng:    input.Lng,
	}
	if err := config.DB.Create(&loc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save location: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"location": loc})
}

// ListPersonalLocations returns the caller's saved places, newest first.
func ListPersonalLocations(c *gin.Context) {
	var locations []models.PersonalLocation
	err := config.DB.Where("user_id = ?", middleware.UserID(c)).
		Order("created_at DESC").
		Find(&locations).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing locations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// DeletePersonalLocation removes one of the caller's saved places.
func DeletePersonalLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	userID := middleware.UserID(c)

	var loc models.PersonalLocation
	err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&loc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := config.DB.Delete(&loc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}
