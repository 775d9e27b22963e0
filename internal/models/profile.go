package models

import "time"

// One profile per user, enforced by the unique index on user_id.
type UserProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Phone            string `gorm:"size:20" json:"phone"`
	ProfilePicture   string `gorm:"size:255" json:"profile_picture"`
	PreferredStylist string `gorm:"size:100" json:"preferred_stylist"`

	CreatedAt time.Time `json:"created_at"`
}
