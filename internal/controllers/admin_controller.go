package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/models"
	"github.com/AK301382/maser/internal/services"
)

// PendingRoads lists the road moderation queue, oldest first.
func PendingRoads(c *gin.Context) {
	roads, err := moderation().PendingRoads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing pending roads: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roads": toRoadResponses(roads)})
}

// PendingPOIs lists the POI moderation queue, oldest first.
func PendingPOIs(c *gin.Context) {
	pois, err := moderation().PendingPOIs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing pending places: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pois": pois})
}

// decisionResponse reports the moderation outcome. When the transition and
// credit committed but the owner notification failed, the decision still
// stands: respond OK and carry the warning instead of an error status.
func decisionResponse(c *gin.Context, payload gin.H, err error) {
	if err == nil {
		c.JSON(http.StatusOK, payload)
		return
	}
	if apperrors.IsSideEffect(err) {
		logrus.WithError(err).Warn("moderation side effect failed")
		payload["warning"] = err.Error()
		c.JSON(http.StatusOK, payload)
		return
	}
	respondError(c, err)
}

// ApproveRoad approves a pending road, crediting and notifying the owner.
func ApproveRoad(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	road, err := moderation().ApproveRoad(id)
	payload := gin.H{"message": "Road approved and coin awarded"}
	if road != nil {
		payload["road"] = toRoadResponse(*road)
	}
	decisionResponse(c, payload, err)
}

// RejectRoad rejects a pending road and notifies the owner.
func RejectRoad(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	road, err := moderation().RejectRoad(id)
	payload := gin.H{"message": "Road rejected"}
	if road != nil {
		payload["road"] = toRoadResponse(*road)
	}
	decisionResponse(c, payload, err)
}

// ApprovePOI approves a pending place, crediting and notifying the owner.
func ApprovePOI(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	poi, err := moderation().ApprovePOI(id)
	payload := gin.H{"message": "Place approved and coin awarded"}
	if poi != nil {
		payload["poi"] = poi
	}
	decisionResponse(c, payload, err)
}

// RejectPOI rejects a pending place and notifies the owner.
func RejectPOI(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	poi, err := moderation().RejectPOI(id)
	payload := gin.H{"message": "Place rejected"}
	if poi != nil {
		payload["poi"] = poi
	}
	decisionResponse(c, payload, err)
}

// BroadcastNotification sends a message to every user (user_id "all") or to
// one specific user.
func BroadcastNotification(c *gin.Context) {
	var input struct {
		UserID  string `json:"userId" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := notifications()
	if input.UserID == "all" {
		if err := svc.Broadcast(input.Title, input.Message); err != nil {
			respondError(c, err)
			return
		}
		logrus.Info("broadcast notification sent")
		c.JSON(http.StatusOK, gin.H{"message": "Notification broadcast to all users"})
		return
	}

	targetID, err := strconv.ParseUint(input.UserID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be \"all\" or a user id"})
		return
	}
	var target models.User
	if err := config.DB.First(&target, uint(targetID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err := svc.Notify(target.ID, input.Title, input.Message); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
}

// AdminStats returns the dashboard counters.
func AdminStats(c *gin.Context) {
	stats, err := services.NewStatsService(config.DB).Collect()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error collecting stats: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
