package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Service string `gorm:"size:20;not null" json:"service"`

	// Calendar date (2006-01-02) and clock time (15:04) kept as strings so the
	// natural (date, time) ordering is plain lexicographic SQL.
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"size:10;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
