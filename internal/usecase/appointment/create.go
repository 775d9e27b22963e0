package appointment

import (
	"context"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	domain "github.com/hairlookapp/hairlook-api/internal/domain/appointment"
	"github.com/hairlookapp/hairlook-api/internal/httperr"
	"github.com/hairlookapp/hairlook-api/internal/models"
	"github.com/hairlookapp/hairlook-api/internal/validators"
)

type CreateInput struct {
	Service string
	Date    string
	Time    string
	Notes   string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute books an appointment for the caller. The owner is always the
// authenticated caller; any client-supplied owner was already discarded at the
// handler boundary.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	callerID uint,
	in CreateInput,
) (*models.Appointment, error) {

	if !domain.ValidService(domain.Service(in.Service)) {
		return nil, httperr.ErrBusiness("invalid_service")
	}
	if !validators.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !validators.IsValidClockTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	ap := &models.Appointment{
		UserID:  callerID,
		Service: in.Service,
		Date:    in.Date,
		Time:    in.Time,
		Notes:   in.Notes,
		Status:  string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
