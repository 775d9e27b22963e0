package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/hairlookapp/hairlook-api/internal/handlers"
	"github.com/hairlookapp/hairlook-api/internal/infra/repository"
)

func TestHairstyleListCombinesEqualityFilters(t *testing.T) {
	db, mock := newMockDB(t)
	h := handlers.NewHairstyleHandler(db, repository.NewCatalogGormRepository(db), &sinkStub{})

	r := newRouter()
	r.GET("/hairstyles", h.List)

	mock.ExpectQuery(`SELECT .* FROM "hairstyles" WHERE gender = \$1 AND length = \$2`).
		WithArgs("F", "short").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "/hairstyles?gender=F&length=short", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data": [], "total": 0}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHairstyleListFiltersCategoryByName(t *testing.T) {
	db, mock := newMockDB(t)
	h := handlers.NewHairstyleHandler(db, repository.NewCatalogGormRepository(db), &sinkStub{})

	r := newRouter()
	r.GET("/hairstyles", h.List)

	mock.ExpectQuery(`JOIN hairstyle_categories ON hairstyle_categories\.id = hairstyles\.category_id WHERE hairstyle_categories\.name = \$1`).
		WithArgs("Short Cuts").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "/hairstyles?category=Short+Cuts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHairstyleListOrderingAllowList(t *testing.T) {
	db, mock := newMockDB(t)
	h := handlers.NewHairstyleHandler(db, repository.NewCatalogGormRepository(db), &sinkStub{})

	r := newRouter()
	r.GET("/hairstyles", h.List)

	// "-likes" flips to descending; unknown fields fall back to id ASC
	mock.ExpectQuery(`FROM "hairstyles" ORDER BY likes DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "/hairstyles?ordering=-likes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	mock.ExpectQuery(`FROM "hairstyles" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req = httptest.NewRequest(http.MethodGet, "/hairstyles?ordering=password", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

// A non-numeric id never names a row; it must 404 before any query runs.
func TestHairstyleRetrieveNonNumericID(t *testing.T) {
	db, mock := newMockDB(t)
	h := handlers.NewHairstyleHandler(db, repository.NewCatalogGormRepository(db), &sinkStub{})

	r := newRouter()
	r.GET("/hairstyles/:id", h.Retrieve)

	req := httptest.NewRequest(http.MethodGet, "/hairstyles/pixie", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRespondsWithFreshCount(t *testing.T) {
	db, mock := newMockDB(t)
	sink := &sinkStub{}
	h := handlers.NewHairstyleHandler(db, repository.NewCatalogGormRepository(db), sink)

	r := newRouter()
	r.POST("/hairstyles/:id/like", asUser(7, false), h.Like)

	mock.ExpectQuery(`UPDATE "hairstyles" SET`).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(6))

	req := httptest.NewRequest(http.MethodPost, "/hairstyles/3/like", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"likes": 6}`, w.Body.String())

	require.Len(t, sink.events, 1)
	require.Equal(t, "hairstyle_liked", sink.events[0].Action)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeUnknownHairstyle(t *testing.T) {
	db, mock := newMockDB(t)
	h := handlers.NewHairstyleHandler(db, repository.NewCatalogGormRepository(db), &sinkStub{})

	r := newRouter()
	r.POST("/hairstyles/:id/like", asUser(7, false), h.Like)

	mock.ExpectQuery(`UPDATE "hairstyles" SET`).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}))

	req := httptest.NewRequest(http.MethodPost, "/hairstyles/99/like", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
