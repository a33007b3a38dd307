package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/services"
)

// Service constructors over the global DB handle. Cheap to build per
// request; all state lives in the database.
func notifications() *services.NotificationService {
	return services.NewNotificationService(config.DB)
}

func submissions() *services.SubmissionService {
	return services.NewSubmissionService(config.DB, notifications())
}

func moderation() *services.ModerationService {
	return services.NewModerationService(config.DB,
		services.NewRewardService(config.DB), notifications())
}

// respondError maps the error taxonomy onto HTTP statuses. Partial failures
// (SideEffectError) are not mapped here: the decision committed, so the
// handler reports success with a warning instead.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsInvalidState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// pagination reads ?page and ?page_size with the configured bounds.
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(config.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}
	if pageSize > config.MaxPageSize {
		pageSize = config.MaxPageSize
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int64 {
	return (total + int64(pageSize) - 1) / int64(pageSize)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
