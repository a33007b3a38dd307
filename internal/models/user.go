package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Coins    int    `json:"coins" gorm:"default:0;check:coins >= 0"`
	IsAdmin  bool   `json:"is_admin" gorm:"default:false"`

	// Owned submissions
	Roads []Road `gorm:"foreignKey:UserID" json:"roads,omitempty"`
	POIs  []POI  `gorm:"foreignKey:UserID" json:"pois,omitempty"`
}
