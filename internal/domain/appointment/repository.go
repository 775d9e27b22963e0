package appointment

import (
	"context"

	"github.com/hairlookapp/hairlook-api/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetByID looks the appointment up globally; the cancel flow checks
	// ownership after the lookup rather than filtering it away.
	GetByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListForCaller returns every appointment for staff callers and only the
	// caller's own rows otherwise, ordered by (date, time).
	ListForCaller(
		ctx context.Context,
		callerID uint,
		isStaff bool,
	) ([]models.Appointment, error)
}
