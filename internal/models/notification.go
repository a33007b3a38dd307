package models

import (
	"gorm.io/gorm"
)

// Notification is addressed either to a single user (UserID set) or to all
// users (Broadcast true, UserID zero). Broadcast rows are stored once, not
// fanned out; per-recipient read state for them lives in NotificationRead.
type Notification struct {
	gorm.Model

	UserID    uint   `json:"user_id" gorm:"index"`
	Broadcast bool   `json:"broadcast" gorm:"index;default:false"`
	Title     string `json:"title"`
	Message   string `json:"message"`

	// Read is meaningful for direct notifications only; one-way false→true.
	Read bool `json:"read" gorm:"default:false"`
}

// NotificationRead is a read receipt for a broadcast notification.
type NotificationRead struct {
	gorm.Model

	NotificationID uint `json:"notification_id" gorm:"uniqueIndex:idx_notif_user"`
	UserID         uint `json:"user_id" gorm:"uniqueIndex:idx_notif_user"`
}
