package models

import "time"

type Hairstyle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint              `gorm:"not null" json:"category_id"`
	Category   HairstyleCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"category"`

	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Reference to externally stored binary content, persisted verbatim.
	Image string `gorm:"size:255" json:"image"`

	Gender string `gorm:"size:1;default:'U'" json:"gender"`
	Length string `gorm:"size:10;not null" json:"length"`
	Likes  int    `gorm:"default:0" json:"likes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
