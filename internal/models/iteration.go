package models

import (
	"time"
)

// Iteration is one round of gift matching within a group.
type Iteration struct {
	ID          int64     `gorm:"primarykey" json:"id"`
	GroupID     int64     `gorm:"not null" json:"group_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Started     bool      `json:"started"`
	Completed   bool      `json:"completed"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	// Relations
	Pairs []Pair `gorm:"foreignKey:IterationID" json:"-"`
}
