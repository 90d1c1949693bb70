package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NgHoaiTan/chatty-cms/config"
	"github.com/NgHoaiTan/chatty-cms/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key"

func setupAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	Init(&config.Config{
		JWTSecret: testSecret,
		Admins: []config.AdminAccount{
			{ID: 1, Email: "admin@chatty.com", Name: "Admin User", PasswordHash: string(hash)},
		},
	})

	router := gin.New()
	router.POST("/api/admin/login", Login)
	router.GET("/api/admin/profile", middleware.JWTAuthMiddleware(testSecret), AdminProfile)
	return router
}

func doLogin(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"email": email, "password": password})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	router := setupAdminRouter(t)

	w := doLogin(t, router, "admin@chatty.com", "admin123")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Admin   struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, resp.Admin.ID)
	assert.Equal(t, "admin@chatty.com", resp.Admin.Email)
	assert.Equal(t, "Admin User", resp.Admin.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupAdminRouter(t)

	w := doLogin(t, router, "admin@chatty.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestLoginUnknownEmail(t *testing.T) {
	router := setupAdminRouter(t)

	w := doLogin(t, router, "nobody@chatty.com", "admin123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	router := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAdminProfileRoundTrip(t *testing.T) {
	router := setupAdminRouter(t)

	login := doLogin(t, router, "admin@chatty.com", "admin123")
	require.Equal(t, http.StatusOK, login.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"admin@chatty.com"`)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestAdminProfileNoToken(t *testing.T) {
	router := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminProfileUnknownAdmin(t *testing.T) {
	router := setupAdminRouter(t)

	// Valid token naming an admin id that is not configured.
	claims := &middleware.Claims{
		AdminID: 99,
		Email:   "ghost@chatty.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
