package catalog

import (
	"context"

	"github.com/hairlookapp/hairlook-api/internal/models"
)

type Repository interface {
	// IncrementLikes adds one to the hairstyle's like counter in a single
	// atomic statement and returns the new count.
	IncrementLikes(
		ctx context.Context,
		hairstyleID uint,
	) (int, error)

	// SaveFavorite persists the pair and lets the storage-level unique index
	// reject duplicates, so two concurrent saves cannot both succeed.
	SaveFavorite(
		ctx context.Context,
		s *models.SavedHairstyle,
	) error
}
