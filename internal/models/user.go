package models

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type AuthProvider string

const (
	ProviderUnseen AuthProvider = "UNSEEN"
	ProviderGoogle AuthProvider = "GOOGLE"
)

type User struct {
	ID             int64        `gorm:"primarykey" json:"id"`
	Email          string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string       `gorm:"type:varchar(255);not null" json:"-"`
	Role           Role         `gorm:"type:varchar(20);not null" json:"role"`
	Provider       AuthProvider `gorm:"type:varchar(20);not null;<-:create" json:"provider"`
	Name           string       `gorm:"type:varchar(255)" json:"name"`
	PhotoURL       string       `gorm:"type:varchar(512)" json:"photo_url"`
	NumLogins      int64        `json:"num_logins"`
	Validated      bool         `json:"validated"`
	Nonce          int64        `json:"-"`
	LastConnection *time.Time   `json:"last_connection"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Relations
	Memberships []UserGroupRelation `gorm:"foreignKey:UserID" json:"-"`
}
