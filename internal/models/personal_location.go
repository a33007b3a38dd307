package models

import (
	"gorm.io/gorm"
)

// PersonalLocation is a private saved place (home, work, ...). It is not
// moderated and only ever visible to its owner.
type PersonalLocation struct {
	gorm.Model

	UserID uint    `json:"user_id" gorm:"index"`
	Name   string  `json:"name" binding:"required"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}
