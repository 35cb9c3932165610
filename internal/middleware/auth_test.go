package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patient-record-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProtectedRoute() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/user", AuthMiddleware(), func(c *gin.Context) {
		username, _ := c.Get("username")
		c.JSON(http.StatusOK, gin.H{"username": username})
	})
	return r
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	r := setupProtectedRoute()

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	r := setupProtectedRoute()

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareWrongScheme(t *testing.T) {
	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	r := setupProtectedRoute()

	// A present credential under another scheme fails validation, it is not
	// treated as missing.
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareSchemeWithoutCredential(t *testing.T) {
	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	r := setupProtectedRoute()

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	r := setupProtectedRoute()

	token, err := utils.GenerateAccessToken(1, "ann")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"ann"}`, w.Body.String())
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	utils.InitJWT("test-secret", -time.Minute, time.Hour)
	token, err := utils.GenerateAccessToken(1, "ann")
	require.NoError(t, err)

	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	r := setupProtectedRoute()

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
