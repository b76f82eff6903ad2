// Package testutil provides entity generators shared by tests.
package testutil

import (
	"time"

	"github.com/unseenapp/unseen-users/internal/models"
	"github.com/unseenapp/unseen-users/internal/utils"
)

// GenerateUser returns an unsaved user with sensible defaults.
func GenerateUser(email string, role models.Role, validated bool) *models.User {
	return &models.User{
		Email:     email,
		Password:  "hashed-password",
		Role:      role,
		Provider:  models.ProviderUnseen,
		Name:      email,
		NumLogins: 1,
		Validated: validated,
	}
}

// GenerateGroup returns an unsaved group with a fresh joining code.
func GenerateGroup(name string, ownerID int64, completed bool) *models.Group {
	code, err := utils.GenerateJoiningCode()
	if err != nil {
		code = "0000-0000-0000"
	}
	return &models.Group{
		Name:      name,
		Code:      code,
		OwnerID:   ownerID,
		Completed: completed,
	}
}

// GenerateIteration returns an unsaved iteration spanning one day.
func GenerateIteration(groupID int64) *models.Iteration {
	now := time.Now()
	return &models.Iteration{
		GroupID:   groupID,
		StartDate: now,
		EndDate:   now.Add(24 * time.Hour),
		Started:   true,
		Completed: false,
		Name:      "iteration",
	}
}

// GeneratePair returns an unsaved pair between two users.
func GeneratePair(iterationID, giftingUserID, giftedUserID int64) *models.Pair {
	return &models.Pair{
		IterationID:   iterationID,
		GiftingUserID: giftingUserID,
		GiftedUserID:  giftedUserID,
	}
}
