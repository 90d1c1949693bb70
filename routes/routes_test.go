package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NgHoaiTan/chatty-cms/config"
	"github.com/NgHoaiTan/chatty-cms/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret: "test-secret",
		Admins:    []config.AdminAccount{{ID: 1, Email: "admin@chatty.com", Name: "Admin User"}},
	}
	handlers.Init(cfg)
	return SetupRouter(cfg)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Server is running")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := testRouter()

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/users"},
		{"GET", "/api/users/stats"},
		{"GET", "/api/users/new-this-month"},
		{"GET", "/api/users/by-month"},
		{"GET", "/api/users/012345678901234567890123"},
		{"PUT", "/api/users/012345678901234567890123"},
		{"DELETE", "/api/users/012345678901234567890123"},
		{"POST", "/api/users/012345678901234567890123/restore"},
		{"GET", "/api/posts"},
		{"GET", "/api/posts/012345678901234567890123"},
		{"GET", "/api/admin/profile"},
	}

	for _, tt := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestUnknownAPIRouteReturnsJSON404(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}
