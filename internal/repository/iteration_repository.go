package repository

import (
	"github.com/unseenapp/unseen-users/internal/models"
	"gorm.io/gorm"
)

// GormIterationRepository is a GORM implementation of IterationRepository
type GormIterationRepository struct {
	db *gorm.DB
}

// NewIterationRepository creates a new IterationRepository
func NewIterationRepository(db *gorm.DB) IterationRepository {
	return &GormIterationRepository{db: db}
}

// ListByGroup lists the iterations belonging to a group
func (r *GormIterationRepository) ListByGroup(groupID int64) ([]models.Iteration, error) {
	var iterations []models.Iteration
	if err := r.db.Where("group_id = ?", groupID).Find(&iterations).Error; err != nil {
		return nil, err
	}
	return iterations, nil
}

// DeleteByGroup removes every iteration belonging to a group
func (r *GormIterationRepository) DeleteByGroup(groupID int64) error {
	return r.db.Where("group_id = ?", groupID).Delete(&models.Iteration{}).Error
}
