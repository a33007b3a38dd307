package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/models"
)

// NotificationService stores direct and broadcast messages. Broadcasts are a
// single shared row; the per-recipient read state comes from the
// notification_reads receipt table, so storage stays bounded by the number
// of messages, not messages times users.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotificationView is one inbox entry with the read state resolved for the
// requesting user.
type NotificationView struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Broadcast bool      `json:"broadcast"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func validateContent(title, message string) error {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || len(title) > config.MaxTitleLen {
		return apperrors.NewValidation("title", "title must be 1 to 200 characters")
	}
	if message == "" || len(message) > config.MaxMessageLen {
		return apperrors.NewValidation("message", "message must be 1 to 1000 characters")
	}
	return nil
}

// Notify creates a direct notification for one user.
func (s *NotificationService) Notify(userID uint, title, message string) error {
	if err := validateContent(title, message); err != nil {
		return err
	}
	notif := models.Notification{
		UserID:  userID,
		Title:   strings.TrimSpace(title),
		Message: strings.TrimSpace(message),
	}
	return s.db.Create(&notif).Error
}

// Broadcast creates a single notification addressed to every user.
func (s *NotificationService) Broadcast(title, message string) error {
	if err := validateContent(title, message); err != nil {
		return err
	}
	notif := models.Notification{
		Broadcast: true,
		Title:     strings.TrimSpace(title),
		Message:   strings.TrimSpace(message),
	}
	return s.db.Create(&notif).Error
}

// ListFor returns the user's direct notifications plus all broadcasts,
// newest first, each carrying that user's own read state.
func (s *NotificationService) ListFor(userID uint) ([]NotificationView, error) {
	var notifs []models.Notification
	err := s.db.
		Where("user_id = ? OR broadcast = ?", userID, true).
		Order("created_at DESC").
		Limit(100).
		Find(&notifs).Error
	if err != nil {
		return nil, err
	}

	readSet := map[uint]bool{}
	var receipts []models.NotificationRead
	if err := s.db.Where("user_id = ?", userID).Find(&receipts).Error; err != nil {
		return nil, err
	}
	for _, r := range receipts {
		readSet[r.NotificationID] = true
	}

	views := make([]NotificationView, 0, len(notifs))
	for _, n := range notifs {
		read := n.Read
		if n.Broadcast {
			read = readSet[n.ID]
		}
		views = append(views, NotificationView{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Broadcast: n.Broadcast,
			Read:      read,
			CreatedAt: n.CreatedAt,
		})
	}
	return views, nil
}

// UnreadCount is recomputed from ListFor on every call, never cached.
func (s *NotificationService) UnreadCount(userID uint) (int, error) {
	views, err := s.ListFor(userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, v := range views {
		if !v.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flips a notification to read for this user. Idempotent: marking
// an already-read notification again is a no-op, not an error.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	var notif models.Notification
	if err := s.db.First(&notif, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Kind: "notification", ID: notificationID}
		}
		return err
	}

	if notif.Broadcast {
		receipt := models.NotificationRead{NotificationID: notif.ID, UserID: userID}
		return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&receipt).Error
	}

	if notif.UserID != userID {
		return &apperrors.NotFoundError{Kind: "notification", ID: notificationID}
	}
	if notif.Read {
		return nil
	}
	return s.db.Model(&notif).Update("read", true).Error
}
