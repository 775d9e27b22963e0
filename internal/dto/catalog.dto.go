package dto

import (
	"time"

	"github.com/hairlookapp/hairlook-api/internal/models"
)

type HairstyleResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Category     uint      `json:"category"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Gender       string    `json:"gender"`
	Length       string    `json:"length"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewHairstyleResponse expects h.Category to be preloaded; category_name is
// derived from it.
func NewHairstyleResponse(h *models.Hairstyle) HairstyleResponse {
	return HairstyleResponse{
		ID:           h.ID,
		Name:         h.Name,
		Category:     h.CategoryID,
		CategoryName: h.Category.Name,
		Description:  h.Description,
		Image:        h.Image,
		Gender:       h.Gender,
		Length:       h.Length,
		Likes:        h.Likes,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

type TryOnSessionResponse struct {
	ID               uint              `json:"id"`
	User             uint              `json:"user"`
	OriginalPhoto    string            `json:"original_photo"`
	Hairstyle        uint              `json:"hairstyle"`
	HairstyleDetails HairstyleResponse `json:"hairstyle_details"`
	ResultPhoto      string            `json:"result_photo"`
	CreatedAt        time.Time         `json:"created_at"`
	IsSaved          bool              `json:"is_saved"`
}

func NewTryOnSessionResponse(s *models.TryOnSession) TryOnSessionResponse {
	return TryOnSessionResponse{
		ID:               s.ID,
		User:             s.UserID,
		OriginalPhoto:    s.OriginalPhoto,
		Hairstyle:        s.HairstyleID,
		HairstyleDetails: NewHairstyleResponse(&s.Hairstyle),
		ResultPhoto:      s.ResultPhoto,
		CreatedAt:        s.CreatedAt,
		IsSaved:          s.IsSaved,
	}
}

type SavedHairstyleResponse struct {
	ID               uint              `json:"id"`
	User             uint              `json:"user"`
	Hairstyle        uint              `json:"hairstyle"`
	HairstyleDetails HairstyleResponse `json:"hairstyle_details"`
	TryOnSession     *uint             `json:"tryon_session"`
	SavedAt          time.Time         `json:"saved_at"`
}

func NewSavedHairstyleResponse(s *models.SavedHairstyle) SavedHairstyleResponse {
	return SavedHairstyleResponse{
		ID:               s.ID,
		User:             s.UserID,
		Hairstyle:        s.HairstyleID,
		HairstyleDetails: NewHairstyleResponse(&s.Hairstyle),
		TryOnSession:     s.TryOnSessionID,
		SavedAt:          s.SavedAt,
	}
}
