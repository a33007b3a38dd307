package config

import "time"

// Coin system
const (
	CoinsPerApprovedRoad = 1
	CoinsPerApprovedPOI  = 1
)

// Pagination
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Validation bounds
const (
	MinNameLen      = 2
	MaxNameLen      = 200
	MaxLocationName = 100
	MinRoadPoints   = 2
	MaxRoadPoints   = 1000
	MaxTitleLen     = 200
	MaxMessageLen   = 1000
	MinPasswordLen  = 6
)

// Auth / sync
const (
	TokenLifetime        = 72 * time.Hour
	NotificationPollTick = 30 * time.Second
)

// Rate limiting (requests per minute per client)
const RateLimitPerMinute = 60
