package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/geo"
	"github.com/AK301382/maser/internal/models"
)

// SubmissionService validates and persists pending roads and POIs. Newly
// created records are visible to the moderation queue as soon as Create
// returns; the public navigation view never sees them until approval.
type SubmissionService struct {
	db     *gorm.DB
	notifs *NotificationService
}

func NewSubmissionService(db *gorm.DB, notifs *NotificationService) *SubmissionService {
	return &SubmissionService{db: db, notifs: notifs}
}

// RoadInput is the payload produced by a finished drawing session.
type RoadInput struct {
	Name        string      `json:"road_name"`
	Type        string      `json:"road_type"`
	Coordinates [][]float64 `json:"coordinates"`
	ClientToken string      `json:"client_token"`
}

// POIInput is a single-point submission payload.
type POIInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Type        string  `json:"poi_type"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	ClientToken string  `json:"client_token"`
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < config.MinNameLen || len(name) > config.MaxNameLen {
		return "", apperrors.NewValidation("name", "name must be 2 to 200 characters")
	}
	return name, nil
}

// SubmitRoad creates a pending road owned by ownerID. No coins are granted
// at submission time. A non-empty client token makes the call idempotent:
// resubmitting the same token returns the record created the first time.
func (s *SubmissionService) SubmitRoad(ownerID uint, in RoadInput) (*models.Road, error) {
	name, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}
	if !models.ValidRoadType(in.Type) {
		return nil, apperrors.NewValidation("road_type", "unknown road type")
	}
	wkbGeom, err := geo.EncodeLine(in.Coordinates)
	if err != nil {
		return nil, err
	}

	if in.ClientToken != "" {
		var existing models.Road
		err := s.db.Where("user_id = ? AND client_token = ?", ownerID, in.ClientToken).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	road := models.Road{
		UserID:   ownerID,
		Name:     name,
		Type:     in.Type,
		Geometry: wkbGeom,
		Status:   models.StatusPending,
	}
	if in.ClientToken != "" {
		token := in.ClientToken
		road.ClientToken = &token
	}
	if err := s.db.Create(&road).Error; err != nil {
		return nil, err
	}

	// Receipt notification; failure here never fails the submission.
	if err := s.notifs.Notify(ownerID, "Road submitted",
		"Your road was submitted and will earn a coin once approved."); err != nil {
		logrus.WithError(err).WithField("road_id", road.ID).
			Warn("submission receipt notification failed")
	}

	logrus.WithFields(logrus.Fields{"road_id": road.ID, "user_id": ownerID}).
		Info("road submitted")
	return &road, nil
}

// SubmitPOI creates a pending point of interest owned by ownerID.
func (s *SubmissionService) SubmitPOI(ownerID uint, in POIInput) (*models.POI, error) {
	name, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}
	if !models.ValidCategory(in.Category) {
		return nil, apperrors.NewValidation("category", "category must be public or private")
	}
	if err := geo.ValidatePoint(in.Lat, in.Lng); err != nil {
		return nil, err
	}

	if in.ClientToken != "" {
		var existing models.POI
		err := s.db.Where("user_id = ? AND client_token = ?", ownerID, in.ClientToken).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	poi := models.POI{
		UserID:   ownerID,
		Name:     name,
		Category: in.Category,
		Type:     strings.TrimSpace(in.Type),
		Lat:      in.Lat,
		Lng:      in.Lng,
		Status:   models.StatusPending,
	}
	if in.ClientToken != "" {
		token := in.ClientToken
		poi.ClientToken = &token
	}
	if err := s.db.Create(&poi).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"poi_id": poi.ID, "user_id": ownerID}).
		Info("poi submitted")
	return &poi, nil
}

// UserRoads lists the caller's own submissions, newest first.
func (s *SubmissionService) UserRoads(ownerID uint) ([]models.Road, error) {
	var roads []models.Road
	err := s.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&roads).Error
	return roads, err
}

// UserPOIs lists the caller's own POI submissions, newest first.
func (s *SubmissionService) UserPOIs(ownerID uint) ([]models.POI, error) {
	var pois []models.POI
	err := s.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&pois).Error
	return pois, err
}
