package appointment

import (
	"context"

	domain "github.com/hairlookapp/hairlook-api/internal/domain/appointment"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	callerID uint,
	isStaff bool,
) ([]models.Appointment, error) {
	return uc.repo.ListForCaller(ctx, callerID, isStaff)
}
