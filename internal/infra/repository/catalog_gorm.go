package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hairlookapp/hairlook-api/internal/httperr"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

const pgUniqueViolation = "23505"

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// IncrementLikes runs `likes = likes + 1` in one statement with RETURNING, so
// concurrent likes never read-modify-write each other's count away.
func (r *CatalogGormRepository) IncrementLikes(
	ctx context.Context,
	hairstyleID uint,
) (int, error) {

	var h models.Hairstyle
	res := r.db.WithContext(ctx).
		Model(&h).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "likes"}}}).
		Where("id = ?", hairstyleID).
		Update("likes", gorm.Expr("likes + ?", 1))

	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	return h.Likes, nil
}

func (r *CatalogGormRepository) SaveFavorite(
	ctx context.Context,
	s *models.SavedHairstyle,
) error {

	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if IsUniqueViolation(err) {
			return httperr.ErrBusiness("already_saved")
		}
		return err
	}
	return nil
}

// IsUniqueViolation reports whether err is a storage-level unique index
// violation, either as translated by gorm or as the raw postgres error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
