package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unseenapp/unseen-users/internal/models"
	"github.com/unseenapp/unseen-users/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService provides business logic for user lifecycle operations.
type UserService struct {
	userRepo      repository.UserRepository
	groupRepo     repository.GroupRepository
	iterationRepo repository.IterationRepository
	pairRepo      repository.PairRepository
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	iterationRepo repository.IterationRepository,
	pairRepo repository.PairRepository,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		groupRepo:     groupRepo,
		iterationRepo: iterationRepo,
		pairRepo:      pairRepo,
	}
}

// Users returns one page of users for the given filter.
func (s *UserService) Users(filter repository.UserFilter) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register creates a new local user. The lookup here is the fast path;
// the unique index on email is what actually prevents two concurrent
// registrations for the same address from both succeeding.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:    input.Email,
		Name:     input.Name,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
		Provider: models.ProviderUnseen,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateInput holds the partial patch applied to a user. Blank name or
// password leaves the stored value unchanged; a nil role keeps the
// existing role; validated is monotonic and never flips back to false.
type UpdateInput struct {
	Name      string
	Password  string
	Role      *models.Role
	Validated bool
}

// Update applies a partial patch to a user. Email, provider, login
// counters and timestamps are not updatable through this path.
func (s *UserService) Update(id int64, input UpdateInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if strings.TrimSpace(input.Name) != "" {
		user.Name = input.Name
	}
	if strings.TrimSpace(input.Password) != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.Password = string(hashedPassword)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	user.Validated = user.Validated || input.Validated

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes a user and repairs every record that referenced them.
func (s *UserService) Delete(id int64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return s.repairReferences(id)
}

// repairReferences runs the three cleanup passes after a user has been
// removed: membership cleanup, pair anonymization and ownership
// transfer or group teardown. Empty reads mean there is nothing to
// repair for that pass, and re-running against already-repaired state
// is a no-op, so a retry after a partial failure is safe.
func (s *UserService) repairReferences(userID int64) error {
	// Pass 1: drop the deleted user's memberships.
	memberships, err := s.groupRepo.ListMembershipsByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to list memberships: %w", err)
	}
	if err := s.groupRepo.DeleteMemberships(membershipIDs(memberships)); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	// Pass 2: anonymize the deleted user's side of every pair.
	pairs, err := s.pairRepo.FindByParticipant(userID)
	if err != nil {
		return fmt.Errorf("failed to list pairs: %w", err)
	}
	for _, pair := range anonymizePairs(pairs, userID) {
		if err := s.pairRepo.Save(&pair); err != nil {
			return fmt.Errorf("failed to anonymize pair %d: %w", pair.ID, err)
		}
	}

	// Pass 3: hand owned groups to a remaining member, or tear them
	// down when nobody is left.
	groups, err := s.groupRepo.FindByOwner(userID)
	if err != nil {
		return fmt.Errorf("failed to list owned groups: %w", err)
	}

	remainingMembers := make(map[int64][]models.User, len(groups))
	for _, group := range groups {
		members, err := s.resolveMembers(group.ID)
		if err != nil {
			return err
		}
		remainingMembers[group.ID] = members
	}

	plan := planGroupRepair(groups, remainingMembers)

	for _, group := range plan.transfers {
		if err := s.groupRepo.Update(&group); err != nil {
			return fmt.Errorf("failed to transfer ownership of group %d: %w", group.ID, err)
		}
	}

	for _, group := range plan.teardowns {
		// The iterations must be read before anything is deleted so
		// their pairs can still be found.
		iterations, err := s.iterationRepo.ListByGroup(group.ID)
		if err != nil {
			return fmt.Errorf("failed to list iterations of group %d: %w", group.ID, err)
		}

		if err := s.groupRepo.Delete(group.ID); err != nil {
			return fmt.Errorf("failed to delete group %d: %w", group.ID, err)
		}
		if err := s.iterationRepo.DeleteByGroup(group.ID); err != nil {
			return fmt.Errorf("failed to delete iterations of group %d: %w", group.ID, err)
		}
		for _, iteration := range iterations {
			if err := s.pairRepo.DeleteByIteration(iteration.ID); err != nil {
				return fmt.Errorf("failed to delete pairs of iteration %d: %w", iteration.ID, err)
			}
		}
	}

	return nil
}

// resolveMembers returns the members of a group that still resolve to
// existing users, in membership order. Memberships pointing at users
// that no longer exist are skipped.
func (s *UserService) resolveMembers(groupID int64) ([]models.User, error) {
	memberships, err := s.groupRepo.ListMembershipsByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of group %d: %w", groupID, err)
	}

	var members []models.User
	for _, membership := range memberships {
		user, err := s.userRepo.FindByID(membership.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve member %d: %w", membership.UserID, err)
		}
		members = append(members, *user)
	}
	return members, nil
}
