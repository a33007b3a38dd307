package models

import (
	"gorm.io/gorm"
)

// Moderation lifecycle shared by Road and POI. pending is the only initial
// state; approved and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Road types accepted on submission.
const (
	RoadTypeMainStreet = "main-street"
	RoadTypeSideStreet = "side-street"
	RoadTypeAlley      = "alley"
	RoadTypeHighway    = "highway"
)

// Road represents a user-drawn road submission awaiting moderation.
// Rows are never deleted so the moderation history stays auditable.
type Road struct {
	gorm.Model

	UserID uint   `json:"user_id" gorm:"index;uniqueIndex:idx_roads_owner_token"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type" binding:"required"`

	// Geometry stored as a WKB LINESTRING; at least 2 points.
	// API payloads use [lat,lng] pairs; conversion lives in internal/geo.
	Geometry []byte `gorm:"type:bytea" json:"-"`

	Status      string  `json:"status" gorm:"index;default:pending"`
	CoinAwarded bool    `json:"coin_awarded" gorm:"default:false"`
	// Unique per owner, not globally: two users may mint the same token.
	ClientToken *string `json:"client_token,omitempty" gorm:"uniqueIndex:idx_roads_owner_token"`
}

// ValidRoadType reports whether t is one of the accepted road types.
func ValidRoadType(t string) bool {
	switch t {
	case RoadTypeMainStreet, RoadTypeSideStreet, RoadTypeAlley, RoadTypeHighway:
		return true
	}
	return false
}
