package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/geo"
	"github.com/AK301382/maser/internal/middleware"
	"github.com/AK301382/maser/internal/models"
	"github.com/AK301382/maser/internal/services"
)

// RoadResponse mirrors models.Road with the geometry decoded for clients:
// Coordinates as [lat,lng] pairs plus a ready-to-render GeoJSON string.
type RoadResponse struct {
	ID          uint        `json:"ID"`
	CreatedAt   time.Time   `json:"CreatedAt"`
	UserID      uint        `json:"user_id"`
	Name        string      `json:"road_name"`
	Type        string      `json:"road_type"`
	Coordinates [][]float64 `json:"coordinates"`
	Geometry    string      `json:"geometry"`
	Status      string      `json:"status"`
	CoinAwarded bool        `json:"coin_awarded"`
}

func toRoadResponse(road models.Road) RoadResponse {
	pairs, _ := geo.DecodeLine(road.Geometry)
	jsonGeom, _ := geo.ToGeoJSON(road.Geometry)
	return RoadResponse{
		ID:          road.ID,
		CreatedAt:   road.CreatedAt,
		UserID:      road.UserID,
		Name:        road.Name,
		Type:        road.Type,
		Coordinates: pairs,
		Geometry:    jsonGeom,
		Status:      road.Status,
		CoinAwarded: road.CoinAwarded,
	}
}

func toRoadResponses(roads []models.Road) []RoadResponse {
	out := make([]RoadResponse, 0, len(roads))
	for _, r := range roads {
		out = append(out, toRoadResponse(r))
	}
	return out
}

// SubmitRoad creates a pending road submission for the authenticated user.
func SubmitRoad(c *gin.Context) {
	var input services.RoadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("SubmitRoad: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	road, err := submissions().SubmitRoad(middleware.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"road": toRoadResponse(*road)})
}

// ListRoads returns roads with optional ?status filter, paginated.
func ListRoads(c *gin.Context) {
	page, pageSize := pagination(c)

	query := config.DB.Model(&models.Road{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting roads: " + err.Error()})
		return
	}

	var roads []models.Road
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&roads).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing roads: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       toRoadResponses(roads),
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages(total, pageSize),
	})
}

// UserRoads lists the authenticated user's own submissions.
func UserRoads(c *gin.Context) {
	roads, err := submissions().UserRoads(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing roads: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roads": toRoadResponses(roads)})
}

// ApprovedRoads is the navigation-view snapshot: approved records only.
func ApprovedRoads(c *gin.Context) {
	roads, err := moderation().ApprovedRoads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing roads: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roads": toRoadResponses(roads)})
}
