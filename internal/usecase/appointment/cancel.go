package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	domain "github.com/hairlookapp/hairlook-api/internal/domain/appointment"
	"github.com/hairlookapp/hairlook-api/internal/httperr"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the appointment on behalf of the caller. The lookup is
// global; ownership is checked afterwards, so a non-owner gets an
// authorization failure rather than a not-found, and nothing is mutated.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	callerID uint,
	isStaff bool,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if ap.UserID != callerID && !isStaff {
		return nil, httperr.ErrBusiness("not_authorized")
	}

	domain.Cancel(ap)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
