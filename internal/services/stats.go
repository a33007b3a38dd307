package services

import (
	"gorm.io/gorm"

	"github.com/AK301382/maser/internal/models"
)

// Stats is the admin dashboard counter set.
type Stats struct {
	Users         int64 `json:"users"`
	RoadsTotal    int64 `json:"roads_total"`
	RoadsPending  int64 `json:"roads_pending"`
	RoadsApproved int64 `json:"roads_approved"`
	POIsTotal     int64 `json:"pois_total"`
	POIsPending   int64 `json:"pois_pending"`
	TotalCoins    int64 `json:"total_coins"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Collect recounts everything on each call; the dashboard polls rarely
// enough that precomputing is not worth the bookkeeping.
func (s *StatsService) Collect() (*Stats, error) {
	var st Stats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&st.Users, s.db.Model(&models.User{})},
		{&st.RoadsTotal, s.db.Model(&models.Road{})},
		{&st.RoadsPending, s.db.Model(&models.Road{}).Where("status = ?", models.StatusPending)},
		{&st.RoadsApproved, s.db.Model(&models.Road{}).Where("status = ?", models.StatusApproved)},
		{&st.POIsTotal, s.db.Model(&models.POI{})},
		{&st.POIsPending, s.db.Model(&models.POI{}).Where("status = ?", models.StatusPending)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := s.db.Model(&models.User{}).
		Select("COALESCE(SUM(coins), 0)").
		Scan(&st.TotalCoins).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}
