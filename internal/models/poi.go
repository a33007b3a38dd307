package models

import (
	"gorm.io/gorm"
)

// POI categories.
const (
	CategoryPublic  = "public"
	CategoryPrivate = "private"
)

// POI is a single-coordinate point of interest, moderated the same way
// roads are.
type POI struct {
	gorm.Model

	UserID   uint    `json:"user_id" gorm:"index;uniqueIndex:idx_pois_owner_token"`
	User     User    `gorm:"foreignKey:UserID" json:"-"`
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Type     string  `json:"poi_type"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`

	Status      string  `json:"status" gorm:"index;default:pending"`
	CoinAwarded bool    `json:"coin_awarded" gorm:"default:false"`
	ClientToken *string `json:"client_token,omitempty" gorm:"uniqueIndex:idx_pois_owner_token"`
}

// ValidCategory reports whether c is an accepted POI category.
func ValidCategory(c string) bool {
	return c == CategoryPublic || c == CategoryPrivate
}
