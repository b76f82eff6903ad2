package models

import (
	"time"
)

// AnonymizedUserID is stored in a pair's participant field when the
// original participant has been deleted. It intentionally does not
// resolve to a user.
const AnonymizedUserID int64 = -1

// Pair is the historical record of one gifting match inside an
// iteration. Pairs outlive their participants: deleting a user
// anonymizes their side instead of removing the pair.
type Pair struct {
	ID            int64     `gorm:"primarykey" json:"id"`
	IterationID   int64     `gorm:"not null" json:"iteration_id"`
	GiftingUserID int64     `gorm:"not null" json:"gifting_user_id"`
	GiftedUserID  int64     `gorm:"not null" json:"gifted_user_id"`
	CreatedAt     time.Time `json:"created_at"`
}
