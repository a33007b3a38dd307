package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AK301382/maser/internal/models"
)

func TestStatsCollect(t *testing.T) {
	db := newTestDB(t)
	subs, mods, _, _ := newPipeline(db)
	alice := createUser(t, db, "alice@example.com")
	createUser(t, db, "bob@example.com")

	road, err := subs.SubmitRoad(alice.ID, mainStreet())
	require.NoError(t, err)
	_, err = subs.SubmitRoad(alice.ID, RoadInput{
		Name: "Second Ave", Type: models.RoadTypeSideStreet,
		Coordinates: [][]float64{{35.0, 51.0}, {35.1, 51.1}},
	})
	require.NoError(t, err)
	_, err = subs.SubmitPOI(alice.ID, POIInput{
		Name: "Corner Cafe", Category: models.CategoryPublic,
		Lat: 35.70, Lng: 51.40,
	})
	require.NoError(t, err)

	_, err = mods.ApproveRoad(road.ID)
	require.NoError(t, err)

	stats, err := NewStatsService(db).Collect()
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.Users)
	require.EqualValues(t, 2, stats.RoadsTotal)
	require.EqualValues(t, 1, stats.RoadsPending)
	require.EqualValues(t, 1, stats.RoadsApproved)
	require.EqualValues(t, 1, stats.POIsTotal)
	require.EqualValues(t, 1, stats.POIsPending)
	require.EqualValues(t, 1, stats.TotalCoins)
}
