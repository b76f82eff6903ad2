package repository

import (
	"github.com/unseenapp/unseen-users/internal/models"
	"gorm.io/gorm"
)

// GormPairRepository is a GORM implementation of PairRepository
type GormPairRepository struct {
	db *gorm.DB
}

// NewPairRepository creates a new PairRepository
func NewPairRepository(db *gorm.DB) PairRepository {
	return &GormPairRepository{db: db}
}

// FindByParticipant lists pairs referencing a user on either side
func (r *GormPairRepository) FindByParticipant(userID int64) ([]models.Pair, error) {
	var pairs []models.Pair
	if err := r.db.
		Where("gifting_user_id = ? OR gifted_user_id = ?", userID, userID).
		Find(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}

// Save persists a pair
func (r *GormPairRepository) Save(pair *models.Pair) error {
	return r.db.Save(pair).Error
}

// DeleteByIteration removes every pair belonging to an iteration
func (r *GormPairRepository) DeleteByIteration(iterationID int64) error {
	return r.db.Where("iteration_id = ?", iterationID).Delete(&models.Pair{}).Error
}
