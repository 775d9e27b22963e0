package models

import "time"

// A user may save a given hairstyle at most once (idx_user_hairstyle).
type SavedHairstyle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index;uniqueIndex:idx_user_hairstyle" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	HairstyleID uint      `gorm:"not null;uniqueIndex:idx_user_hairstyle" json:"hairstyle_id"`
	Hairstyle   Hairstyle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hairstyle"`

	TryOnSessionID *uint         `json:"tryon_session_id"`
	TryOnSession   *TryOnSession `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tryon_session,omitempty"`

	SavedAt time.Time `gorm:"autoCreateTime" json:"saved_at"`
}
