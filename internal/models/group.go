package models

import (
	"time"
)

type Group struct {
	ID        int64     `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	OwnerID   int64     `gorm:"not null" json:"owner_id"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations. OwnerID is a plain back-reference to a user, not a
	// database-enforced constraint; consistency is maintained in the
	// deletion repair passes.
	Memberships []UserGroupRelation `gorm:"foreignKey:GroupID" json:"-"`
	Iterations  []Iteration         `gorm:"foreignKey:GroupID" json:"-"`
}
