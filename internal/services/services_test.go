package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// :memory: gives each pooled connection its own database; pin to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func newPipeline(db *gorm.DB) (*SubmissionService, *ModerationService, *NotificationService, *RewardService) {
	notifs := NewNotificationService(db)
	rewards := NewRewardService(db)
	return NewSubmissionService(db, notifs),
		NewModerationService(db, rewards, notifs),
		notifs,
		rewards
}

func mainStreet() RoadInput {
	return RoadInput{
		Name:        "Main St",
		Type:        models.RoadTypeHighway,
		Coordinates: [][]float64{{35.70, 51.40}, {35.71, 51.41}},
	}
}
