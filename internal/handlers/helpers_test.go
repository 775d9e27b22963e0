package handlers_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	"github.com/hairlookapp/hairlook-api/internal/middleware"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return db, mock
}

// asUser stands in for the auth middleware in handler tests.
func asUser(userID uint, isStaff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextIsStaff, isStaff)
		c.Next()
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type sinkStub struct {
	events []audit.Event
}

func (s *sinkStub) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}
