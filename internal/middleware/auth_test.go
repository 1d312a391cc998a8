package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/transit-fleet/internal/auth"
	"github.com/ukydev/transit-fleet/internal/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	service, _ := auth.NewService()
	m := NewAuthMiddleware(service)

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	w := httptest.NewRecorder()
	m.Authenticate(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_HealthSkipsAuth(t *testing.T) {
	service, _ := auth.NewService()
	m := NewAuthMiddleware(service)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	m.Authenticate(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	service, _ := auth.NewService()
	m := NewAuthMiddleware(service)

	token, _ := service.GenerateServiceToken("tester", models.RoleViewer)

	var gotClaims *models.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(inner).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, gotClaims)
	assert.Equal(t, models.RoleViewer, gotClaims.Role)
}

func TestRequireMutate_ViewerBlocked(t *testing.T) {
	service, _ := auth.NewService()
	m := NewAuthMiddleware(service)

	token, _ := service.GenerateServiceToken("viewer", models.RoleViewer)

	req := httptest.NewRequest(http.MethodPost, "/api/alerts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(m.RequireMutate(okHandler())).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireMutate_OperatorAllowed(t *testing.T) {
	service, _ := auth.NewService()
	m := NewAuthMiddleware(service)

	token, _ := service.GenerateServiceToken("operator", models.RoleOperator)

	req := httptest.NewRequest(http.MethodPost, "/api/alerts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(m.RequireMutate(okHandler())).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireMutate_GetStaysOpen(t *testing.T) {
	service, _ := auth.NewService()
	m := NewAuthMiddleware(service)

	token, _ := service.GenerateServiceToken("viewer", models.RoleViewer)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/v1/dwell", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(m.RequireMutate(okHandler())).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
