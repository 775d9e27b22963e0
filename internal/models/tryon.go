package models

import "time"

type TryOnSession struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	HairstyleID uint      `gorm:"not null" json:"hairstyle_id"`
	Hairstyle   Hairstyle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hairstyle"`

	OriginalPhoto string `gorm:"size:255;not null" json:"original_photo"`

	// Empty until the external image collaborator writes the composite back.
	ResultPhoto string `gorm:"size:255" json:"result_photo"`

	IsSaved bool `gorm:"default:false" json:"is_saved"`

	CreatedAt time.Time `json:"created_at"`
}
