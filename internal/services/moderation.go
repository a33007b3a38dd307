package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/models"
)

// ModerationService owns the pending queue and the only legal status
// transitions: pending→approved and pending→rejected. The transition is a
// compare-and-swap on status keyed by record id, so when two admins race on
// the same record only the first decision lands; the loser gets
// InvalidStateError. The coin credit commits in the same transaction as the
// approval, which makes double-crediting impossible even across retries.
type ModerationService struct {
	db      *gorm.DB
	rewards *RewardService
	notifs  *NotificationService
}

func NewModerationService(db *gorm.DB, rewards *RewardService, notifs *NotificationService) *ModerationService {
	return &ModerationService{db: db, rewards: rewards, notifs: notifs}
}

// PendingRoads lists roads awaiting a decision, oldest first.
func (s *ModerationService) PendingRoads() ([]models.Road, error) {
	var roads []models.Road
	err := s.db.Where("status = ?", models.StatusPending).
		Order("created_at ASC").Find(&roads).Error
	return roads, err
}

// PendingPOIs lists POIs awaiting a decision, oldest first.
func (s *ModerationService) PendingPOIs() ([]models.POI, error) {
	var pois []models.POI
	err := s.db.Where("status = ?", models.StatusPending).
		Order("created_at ASC").Find(&pois).Error
	return pois, err
}

// ApprovedRoads is the public navigation snapshot.
func (s *ModerationService) ApprovedRoads() ([]models.Road, error) {
	var roads []models.Road
	err := s.db.Where("status = ?", models.StatusApproved).
		Order("created_at ASC").Find(&roads).Error
	return roads, err
}

// ApprovedPOIs is the public navigation snapshot for points of interest.
func (s *ModerationService) ApprovedPOIs() ([]models.POI, error) {
	var pois []models.POI
	err := s.db.Where("status = ?", models.StatusApproved).
		Order("created_at ASC").Find(&pois).Error
	return pois, err
}

// ApproveRoad transitions road id to approved, credits the owner and
// notifies them. Returns InvalidStateError if the road already left pending.
// A SideEffectError means the approval and credit committed but the
// notification did not; the status is never regressed.
func (s *ModerationService) ApproveRoad(id uint) (*models.Road, error) {
	return s.decideRoad(id, models.StatusApproved)
}

// RejectRoad transitions road id to rejected and notifies the owner. No
// coins change hands.
func (s *ModerationService) RejectRoad(id uint) (*models.Road, error) {
	return s.decideRoad(id, models.StatusRejected)
}

// ApprovePOI is the POI analogue of ApproveRoad.
func (s *ModerationService) ApprovePOI(id uint) (*models.POI, error) {
	return s.decidePOI(id, models.StatusApproved)
}

// RejectPOI is the POI analogue of RejectRoad.
func (s *ModerationService) RejectPOI(id uint) (*models.POI, error) {
	return s.decidePOI(id, models.StatusRejected)
}

func (s *ModerationService) decideRoad(id uint, decision string) (*models.Road, error) {
	var road models.Road
	if err := s.db.First(&road, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Kind: "road", ID: id}
		}
		return nil, err
	}

	approve := decision == models.StatusApproved
	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": decision}
		if approve {
			updates["coin_awarded"] = true
		}
		res := tx.Model(&models.Road{}).
			Where("id = ? AND status = ?", id, models.StatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race: reload to report the status that won.
			var current models.Road
			if err := tx.First(&current, id).Error; err != nil {
				return err
			}
			return &apperrors.InvalidStateError{Kind: "road", ID: id, Status: current.Status}
		}
		if approve {
			return s.rewards.credit(tx, road.UserID, config.CoinsPerApprovedRoad)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	road.Status = decision
	road.CoinAwarded = approve

	logrus.WithFields(logrus.Fields{"road_id": id, "decision": decision}).
		Info("road moderated")

	if err := s.notifyRoadOwner(&road, approve); err != nil {
		return &road, &apperrors.SideEffectError{Op: "road " + decision, Err: err}
	}
	return &road, nil
}

func (s *ModerationService) notifyRoadOwner(road *models.Road, approved bool) error {
	if approved {
		return s.notifs.Notify(road.UserID, "Coin received!",
			fmt.Sprintf("Congratulations! Your road '%s' was approved and %d coin was added to your balance.",
				road.Name, config.CoinsPerApprovedRoad))
	}
	return s.notifs.Notify(road.UserID, "Road rejected",
		fmt.Sprintf("Unfortunately your submitted road '%s' was not approved.", road.Name))
}

func (s *ModerationService) decidePOI(id uint, decision string) (*models.POI, error) {
	var poi models.POI
	if err := s.db.First(&poi, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Kind: "poi", ID: id}
		}
		return nil, err
	}

	approve := decision == models.StatusApproved
	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": decision}
		if approve {
			updates["coin_awarded"] = true
		}
		res := tx.Model(&models.POI{}).
			Where("id = ? AND status = ?", id, models.StatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current models.POI
			if err := tx.First(&current, id).Error; err != nil {
				return err
			}
			return &apperrors.InvalidStateError{Kind: "poi", ID: id, Status: current.Status}
		}
		if approve {
			return s.rewards.credit(tx, poi.UserID, config.CoinsPerApprovedPOI)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	poi.Status = decision
	poi.CoinAwarded = approve

	logrus.WithFields(logrus.Fields{"poi_id": id, "decision": decision}).
		Info("poi moderated")

	if err := s.notifyPOIOwner(&poi, approve); err != nil {
		return &poi, &apperrors.SideEffectError{Op: "poi " + decision, Err: err}
	}
	return &poi, nil
}

func (s *ModerationService) notifyPOIOwner(poi *models.POI, approved bool) error {
	if approved {
		return s.notifs.Notify(poi.UserID, "Coin received!",
			fmt.Sprintf("Congratulations! Your place '%s' was approved and %d coin was added to your balance.",
				poi.Name, config.CoinsPerApprovedPOI))
	}
	return s.notifs.Notify(poi.UserID, "Place rejected",
		fmt.Sprintf("Unfortunately your submitted place '%s' was not approved.", poi.Name))
}
