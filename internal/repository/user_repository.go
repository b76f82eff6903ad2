package repository

import (
	"strings"

	"github.com/unseenapp/unseen-users/internal/database"
	"github.com/unseenapp/unseen-users/internal/models"
	"github.com/unseenapp/unseen-users/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users ordered by creation time descending. The filter
// dispatches to exactly one of four branches: email substring and role,
// role only, email substring only, or unrestricted. The email match is
// case-insensitive.
func (r *GormUserRepository) List(filter UserFilter) ([]models.User, int64, error) {
	var users []models.User

	query := r.db.Model(&models.User{})

	switch {
	case filter.EmailFilter != nil && filter.Role != nil:
		query = query.
			Where("LOWER(email) LIKE ?", "%"+strings.ToLower(*filter.EmailFilter)+"%").
			Where("role = ?", *filter.Role)
	case filter.Role != nil:
		query = query.Where("role = ?", *filter.Role)
	case filter.EmailFilter != nil:
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(*filter.EmailFilter)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: filter.Page * filter.PageSize,
		}))
	}

	if err := listQuery.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user
func (r *GormUserRepository) Delete(id int64) error {
	return r.db.Delete(&models.User{}, id).Error
}
