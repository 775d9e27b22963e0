package dto

import (
	"time"

	"github.com/hairlookapp/hairlook-api/internal/models"
)

// UserResponse is the public identity projection. Credentials and the staff
// flag never travel on it.
type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type ProfileResponse struct {
	ID               uint         `json:"id"`
	User             UserResponse `json:"user"`
	Phone            string       `json:"phone"`
	ProfilePicture   string       `json:"profile_picture"`
	PreferredStylist string       `json:"preferred_stylist"`
	CreatedAt        time.Time    `json:"created_at"`
}

func NewProfileResponse(p *models.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID,
		User:             NewUserResponse(&p.User),
		Phone:            p.Phone,
		ProfilePicture:   p.ProfilePicture,
		PreferredStylist: p.PreferredStylist,
		CreatedAt:        p.CreatedAt,
	}
}
