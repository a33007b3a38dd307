package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/middleware"
)

// ListNotifications returns the caller's inbox: direct messages plus every
// broadcast, each with the caller's own read state. The unread count is
// recomputed here on every fetch.
func ListNotifications(c *gin.Context) {
	views, err := notifications().ListFor(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing notifications: " + err.Error()})
		return
	}

	unread := 0
	for _, v := range views {
		if !v.Read {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": views,
		"unread_count":  unread,
	})
}

// MarkNotificationRead flips one notification to read for the caller.
// Repeating the call is a no-op.
func MarkNotificationRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := notifications().MarkRead(middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
