package models

// UserGroupRelation is the many-to-many association between users and
// groups. It carries no payload beyond the two ids.
type UserGroupRelation struct {
	ID      int64 `gorm:"primarykey" json:"id"`
	UserID  int64 `gorm:"not null" json:"user_id"`
	GroupID int64 `gorm:"not null" json:"group_id"`
}
