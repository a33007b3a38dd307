package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/models"
)

// RewardService is the only writer of user coin balances. Credits are always
// small positive constants and there is no debit path, so balances never go
// negative.
type RewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

// Credit adds amount coins to the user's balance.
func (s *RewardService) Credit(userID uint, amount int) error {
	return s.credit(s.db, userID, amount)
}

// credit runs against tx so the moderation service can bundle the coin
// credit with the status transition in one transaction.
func (s *RewardService) credit(tx *gorm.DB, userID uint, amount int) error {
	if amount <= 0 {
		return apperrors.NewValidation("amount", "credit amount must be positive")
	}
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("coins", gorm.Expr("coins + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Kind: "user", ID: userID}
	}
	return nil
}

// Balance reads a user's current coin balance.
func (s *RewardService) Balance(userID uint) (int, error) {
	var user models.User
	if err := s.db.Select("coins").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &apperrors.NotFoundError{Kind: "user", ID: userID}
		}
		return 0, err
	}
	return user.Coins, nil
}
