package repository

import (
	"github.com/unseenapp/unseen-users/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id int64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves users with filtering and pagination
	List(filter UserFilter) ([]models.User, int64, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete removes a user
	Delete(id int64) error
}

// UserFilter holds filtering options for listing users. EmailFilter and
// Role select one of four mutually exclusive query branches; see
// GormUserRepository.List.
type UserFilter struct {
	EmailFilter *string
	Role        *models.Role
	Page        int
	PageSize    int
}

// GroupRepository defines the interface for group and membership data access
type GroupRepository interface {
	// FindByOwner lists groups owned by a user
	FindByOwner(ownerID int64) ([]models.Group, error)

	// Update updates a group
	Update(group *models.Group) error

	// Delete removes a group
	Delete(id int64) error

	// ListMembershipsByUser lists a user's group memberships
	ListMembershipsByUser(userID int64) ([]models.UserGroupRelation, error)

	// ListMembershipsByGroup lists a group's memberships ordered by id
	ListMembershipsByGroup(groupID int64) ([]models.UserGroupRelation, error)

	// DeleteMemberships removes the given membership records
	DeleteMemberships(ids []int64) error
}

// IterationRepository defines the interface for iteration data access
type IterationRepository interface {
	// ListByGroup lists the iterations belonging to a group
	ListByGroup(groupID int64) ([]models.Iteration, error)

	// DeleteByGroup removes every iteration belonging to a group
	DeleteByGroup(groupID int64) error
}

// PairRepository defines the interface for pair data access
type PairRepository interface {
	// FindByParticipant lists pairs referencing a user on either side
	FindByParticipant(userID int64) ([]models.Pair, error)

	// Save persists a pair
	Save(pair *models.Pair) error

	// DeleteByIteration removes every pair belonging to an iteration
	DeleteByIteration(iterationID int64) error
}
