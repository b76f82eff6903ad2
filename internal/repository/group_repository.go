package repository

import (
	"github.com/unseenapp/unseen-users/internal/models"
	"gorm.io/gorm"
)

// GormGroupRepository is a GORM implementation of GroupRepository
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

// FindByOwner lists groups owned by a user
func (r *GormGroupRepository) FindByOwner(ownerID int64) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Where("owner_id = ?", ownerID).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Update updates a group
func (r *GormGroupRepository) Update(group *models.Group) error {
	return r.db.Save(group).Error
}

// Delete removes a group
func (r *GormGroupRepository) Delete(id int64) error {
	return r.db.Delete(&models.Group{}, id).Error
}

// ListMembershipsByUser lists a user's group memberships
func (r *GormGroupRepository) ListMembershipsByUser(userID int64) ([]models.UserGroupRelation, error) {
	var memberships []models.UserGroupRelation
	if err := r.db.Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListMembershipsByGroup lists a group's memberships ordered by id. The
// ordering makes ownership transfer deterministic: the first remaining
// member in this order inherits the group.
func (r *GormGroupRepository) ListMembershipsByGroup(groupID int64) ([]models.UserGroupRelation, error) {
	var memberships []models.UserGroupRelation
	if err := r.db.Where("group_id = ?", groupID).Order("id").Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// DeleteMemberships removes the given membership records
func (r *GormGroupRepository) DeleteMemberships(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.UserGroupRelation{}, ids).Error
}
