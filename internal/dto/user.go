package dto

import (
	"time"

	"github.com/unseenapp/unseen-users/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID             int64               `json:"id"`
	Email          string              `json:"email"`
	Name           string              `json:"name"`
	PhotoURL       string              `json:"photoUrl"`
	NumLogins      int64               `json:"numLogins"`
	Validated      bool                `json:"validated"`
	Provider       models.AuthProvider `json:"provider"`
	Role           models.Role         `json:"role"`
	CreateAt       time.Time           `json:"createAt"`
	UpdateAt       time.Time           `json:"updateAt"`
	LastConnection *time.Time          `json:"lastConnection"`
}

// PageInfoDTO carries page metadata in listing responses
type PageInfoDTO struct {
	Page          int   `json:"page"`
	Elements      int   `json:"elements"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	IsLastPage    bool  `json:"isLastPage"`
}

// PageUserDTO represents one page of users
type PageUserDTO struct {
	PageInfo PageInfoDTO `json:"pageInfo"`
	Content  []UserDTO   `json:"content"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		PhotoURL:       user.PhotoURL,
		NumLogins:      user.NumLogins,
		Validated:      user.Validated,
		Provider:       user.Provider,
		Role:           user.Role,
		CreateAt:       user.CreatedAt,
		UpdateAt:       user.UpdatedAt,
		LastConnection: user.LastConnection,
	}
}

// ToPageUserDTO converts a page of users to PageUserDTO. Pages are
// zero-based; the last page is the one with index totalPages-1, and an
// empty result set is a single (empty) last page.
func ToPageUserDTO(users []models.User, page, elements int, totalElements int64) PageUserDTO {
	content := make([]UserDTO, len(users))
	for i, user := range users {
		content[i] = ToUserDTO(user)
	}

	totalPages := int(totalElements) / elements
	if int(totalElements)%elements > 0 {
		totalPages++
	}

	return PageUserDTO{
		PageInfo: PageInfoDTO{
			Page:          page,
			Elements:      elements,
			TotalPages:    totalPages,
			TotalElements: totalElements,
			IsLastPage:    page >= totalPages-1,
		},
		Content: content,
	}
}
