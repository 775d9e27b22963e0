package appointment_test

import (
	"context"

	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

type repoStub struct {
	byID    map[uint]*models.Appointment
	created []*models.Appointment
	updates int
}

func newRepoStub(aps ...*models.Appointment) *repoStub {
	r := &repoStub{byID: map[uint]*models.Appointment{}}
	for _, ap := range aps {
		r.byID[ap.ID] = ap
	}
	return r
}

func (r *repoStub) Create(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(r.byID) + len(r.created) + 1)
	r.created = append(r.created, ap)
	return nil
}

// GetByID hands back a copy so mutations only stick via Update, like a real store.
func (r *repoStub) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *repoStub) Update(_ context.Context, ap *models.Appointment) error {
	r.byID[ap.ID] = ap
	r.updates++
	return nil
}

func (r *repoStub) ListForCaller(_ context.Context, callerID uint, isStaff bool) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.byID {
		if isStaff || ap.UserID == callerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

type sinkStub struct {
	events []audit.Event
}

func (s *sinkStub) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}
