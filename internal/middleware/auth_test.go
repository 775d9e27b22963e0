package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/hairlookapp/hairlook-api/internal/config"
	"github.com/hairlookapp/hairlook-api/internal/middleware"
)

func signToken(t *testing.T, secret string, userID uint, staff bool) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   userID,
		"staff": staff,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.MustGet(middleware.ContextUserID),
			"is_staff": c.MustGet(middleware.ContextIsStaff),
		})
	})
	return r
}

func TestAuthMiddlewareResolvesCaller(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := newAuthRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, 7, true))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id": 7, "is_staff": true}`, w.Body.String())
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newAuthRouter(&config.Config{JWTSecret: "test-secret"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	r := newAuthRouter(&config.Config{JWTSecret: "test-secret"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", 7, false))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareNonBearerScheme(t *testing.T) {
	r := newAuthRouter(&config.Config{JWTSecret: "test-secret"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
