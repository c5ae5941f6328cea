package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/clinicsvc/internal/infrastructure/auth"
	"github.com/you/clinicsvc/internal/mocks"
	"github.com/you/clinicsvc/internal/services"
)

// createTestEnforcer loads the service model and default policies in memory
func createTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	m, err := model.NewModelFromString(auth.DefaultModel)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	for _, p := range auth.DefaultPolicies {
		_, err := e.AddPolicy(p[0], p[1], p[2])
		require.NoError(t, err)
	}
	return e
}

func TestCasbinMW_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	policySvc := services.NewPolicyService(createTestEnforcer(t))

	tests := []struct {
		name           string
		method         string
		path           string
		authenticated  bool
		expectedStatus int
	}{
		{"list patients", http.MethodGet, "/api/patients", true, http.StatusOK},
		{"create patient", http.MethodPost, "/api/patients", true, http.StatusOK},
		{"get patient", http.MethodGet, "/api/patients/12", true, http.StatusOK},
		{"update patient", http.MethodPut, "/api/patients/12", true, http.StatusOK},
		{"delete patient", http.MethodDelete, "/api/patients/12", true, http.StatusOK},
		{"dashboard", http.MethodGet, "/api/analytics/dashboard", true, http.StatusOK},
		{"me", http.MethodGet, "/api/auth/me", true, http.StatusOK},
		{"bulk delete not granted", http.MethodDelete, "/api/patients", true, http.StatusForbidden},
		{"unlisted route", http.MethodGet, "/api/admin/policies", true, http.StatusForbidden},
		{"no identity", http.MethodGet, "/api/patients", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tt.authenticated {
					c.Set(ContextDoctorID, uint(1))
				}
				c.Next()
			})
			r.Use(NewCasbinMW(policySvc, auth.DoctorRole).Enforce())
			r.Any("/*path", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCasbinMW_EnforceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	policySvc := mocks.NewMockPolicyService()
	policySvc.CheckPermissionFunc = func(role, resource, action string) (bool, error) {
		return false, errors.New("adapter offline")
	}

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(ContextDoctorID, uint(1)); c.Next() })
	r.Use(NewCasbinMW(policySvc, auth.DoctorRole).Enforce())
	r.GET("/api/patients", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/patients", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Authorization check failed"}`, w.Body.String())
}
