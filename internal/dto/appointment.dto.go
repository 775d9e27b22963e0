package dto

import (
	"time"

	"github.com/hairlookapp/hairlook-api/internal/models"
)

type AppointmentResponse struct {
	ID          uint         `json:"id"`
	User        uint         `json:"user"`
	UserDetails UserResponse `json:"user_details"`
	Service     string       `json:"service"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Notes       string       `json:"notes"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func NewAppointmentResponse(ap *models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          ap.ID,
		User:        ap.UserID,
		UserDetails: NewUserResponse(&ap.User),
		Service:     ap.Service,
		Date:        ap.Date,
		Time:        ap.Time,
		Notes:       ap.Notes,
		Status:      ap.Status,
		CreatedAt:   ap.CreatedAt,
		UpdatedAt:   ap.UpdatedAt,
	}
}
