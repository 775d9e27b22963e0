package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/hairlookapp/hairlook-api/internal/domain/appointment"
	"github.com/hairlookapp/hairlook-api/internal/handlers"
	"github.com/hairlookapp/hairlook-api/internal/models"
	ucAppointment "github.com/hairlookapp/hairlook-api/internal/usecase/appointment"
)

// fakeAppointmentRepo is a map-backed stand-in for the gorm repository.
type fakeAppointmentRepo struct {
	rows   map[uint]models.Appointment
	nextID uint
}

func newFakeAppointmentRepo(rows ...models.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{rows: make(map[uint]models.Appointment), nextID: 1}
	for _, ap := range rows {
		repo.rows[ap.ID] = ap
		if ap.ID >= repo.nextID {
			repo.nextID = ap.ID + 1
		}
	}
	return repo
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	ap.ID = r.nextID
	r.nextID++
	r.rows[ap.ID] = *ap
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, ap *models.Appointment) error {
	r.rows[ap.ID] = *ap
	return nil
}

func (r *fakeAppointmentRepo) ListForCaller(
	ctx context.Context,
	callerID uint,
	isStaff bool,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range r.rows {
		if isStaff || ap.UserID == callerID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func newAppointmentHandler(
	db *gorm.DB,
	repo domain.Repository,
) (*handlers.AppointmentHandler, *sinkStub) {

	sink := &sinkStub{}
	return handlers.NewAppointmentHandler(
		db,
		ucAppointment.NewCreateAppointment(repo, sink),
		ucAppointment.NewCancelAppointment(repo, sink),
		ucAppointment.NewListAppointments(repo),
	), sink
}

func pendingAppointment(id, userID uint) models.Appointment {
	return models.Appointment{
		ID:      id,
		UserID:  userID,
		Service: "consultation",
		Date:    "2026-09-10",
		Time:    "14:30",
		Status:  "pending",
	}
}

func TestAppointmentCancelByOwner(t *testing.T) {
	db, _ := newMockDB(t)
	repo := newFakeAppointmentRepo(pendingAppointment(5, 7))
	h, sink := newAppointmentHandler(db, repo)

	r := newRouter()
	r.POST("/appointments/:id/cancel", asUser(7, false), h.Cancel)

	req := httptest.NewRequest(http.MethodPost, "/appointments/5/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status": "cancelled"}`, w.Body.String())
	require.Equal(t, "cancelled", repo.rows[5].Status)
	require.Len(t, sink.events, 1)
	require.Equal(t, "appointment_cancelled", sink.events[0].Action)
}

func TestAppointmentCancelByNonOwnerForbidden(t *testing.T) {
	db, _ := newMockDB(t)
	repo := newFakeAppointmentRepo(pendingAppointment(5, 7))
	h, sink := newAppointmentHandler(db, repo)

	r := newRouter()
	r.POST("/appointments/:id/cancel", asUser(99, false), h.Cancel)

	req := httptest.NewRequest(http.MethodPost, "/appointments/5/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"error": "Not authorized"}`, w.Body.String())
	require.Equal(t, "pending", repo.rows[5].Status)
	require.Empty(t, sink.events)
}

func TestAppointmentCancelByStaff(t *testing.T) {
	db, _ := newMockDB(t)
	repo := newFakeAppointmentRepo(pendingAppointment(5, 7))
	h, _ := newAppointmentHandler(db, repo)

	r := newRouter()
	r.POST("/appointments/:id/cancel", asUser(99, true), h.Cancel)

	req := httptest.NewRequest(http.MethodPost, "/appointments/5/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "cancelled", repo.rows[5].Status)
}

func TestAppointmentCancelUnknownID(t *testing.T) {
	db, _ := newMockDB(t)
	h, _ := newAppointmentHandler(db, newFakeAppointmentRepo())

	r := newRouter()
	r.POST("/appointments/:id/cancel", asUser(7, false), h.Cancel)

	req := httptest.NewRequest(http.MethodPost, "/appointments/123/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppointmentCreateAttributesCaller(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newFakeAppointmentRepo()
	h, sink := newAppointmentHandler(db, repo)

	r := newRouter()
	r.POST("/appointments", asUser(7, false), h.Create)

	// owner identity is loaded back for the response projection
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "ana"))

	body := `{"service": "styling", "date": "2026-09-10", "time": "14:30", "notes": "walk-in"}`
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"user":7`)
	require.Contains(t, w.Body.String(), `"status":"pending"`)
	require.Equal(t, uint(7), repo.rows[1].UserID)
	require.Len(t, sink.events, 1)
	require.Equal(t, "appointment_created", sink.events[0].Action)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCreateRejectsBadService(t *testing.T) {
	db, _ := newMockDB(t)
	repo := newFakeAppointmentRepo()
	h, _ := newAppointmentHandler(db, repo)

	r := newRouter()
	r.POST("/appointments", asUser(7, false), h.Create)

	body := `{"service": "perm", "date": "2026-09-10", "time": "14:30"}`
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_service")
	require.Empty(t, repo.rows)
}
