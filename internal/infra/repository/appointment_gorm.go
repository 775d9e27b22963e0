package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hairlookapp/hairlook-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) ListForCaller(
	ctx context.Context,
	callerID uint,
	isStaff bool,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Preload("User")
	if !isStaff {
		q = q.Where("user_id = ?", callerID)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}
