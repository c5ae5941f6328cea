package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/clinicsvc/domain"
	"github.com/you/clinicsvc/internal/mocks"
)

func patientRoutes(h *PatientHandlers) func(r *gin.Engine) {
	return func(r *gin.Engine) {
		r.POST("/api/patients", h.Create)
		r.GET("/api/patients", h.List)
		r.GET("/api/patients/:id", h.Get)
		r.PUT("/api/patients/:id", h.Update)
		r.DELETE("/api/patients/:id", h.Delete)
	}
}

func samplePatient(id uint) *domain.Patient {
	name := "Ana"
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Patient{
		ID:              id,
		DoctorID:        1,
		Name:            &name,
		Symptoms:        []string{"fever"},
		Triggers:        []string{},
		Recommendations: []string{},
		CreatedAt:       at,
		UpdatedAt:       at,
	}
}

func TestPatientHandlers_Create(t *testing.T) {
	var gotToken string
	var gotFields *domain.PatientFields
	svc := &mocks.MockPatientService{
		CreateFunc: func(ctx context.Context, token string, fields *domain.PatientFields) (*domain.Patient, error) {
			gotToken, gotFields = token, fields
			return samplePatient(7), nil
		},
	}
	r := newTestRouter("tok", patientRoutes(NewPatientHandlers(svc)))

	w := doJSON(t, r, http.MethodPost, "/api/patients", `{"name":"Ana","age":30,"familyPhone":"+1555","symptoms":["fever"],"riskLevel":"high"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, "tok", gotToken)
	require.NotNil(t, gotFields)
	assert.Equal(t, "Ana", *gotFields.Name)
	assert.Equal(t, 30, *gotFields.Age)
	assert.Equal(t, "+1555", *gotFields.FamilyPhone)
	assert.Equal(t, []string{"fever"}, gotFields.Symptoms)
	assert.Nil(t, gotFields.City)

	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, float64(1), body["doctorId"])
	assert.Equal(t, []interface{}{}, body["triggers"], "empty lists are rendered as []")
	assert.Contains(t, body, "createdAt")
	assert.Nil(t, body["weight"])
}

func TestPatientHandlers_List(t *testing.T) {
	var filtered string
	svc := &mocks.MockPatientService{
		ListForCallerFunc: func(ctx context.Context, token string) ([]*domain.Patient, error) {
			return nil, nil
		},
		ListByRiskLevelFunc: func(ctx context.Context, token, riskLevel string) ([]*domain.Patient, error) {
			filtered = riskLevel
			return []*domain.Patient{samplePatient(2), samplePatient(1)}, nil
		},
	}
	r := newTestRouter("tok", patientRoutes(NewPatientHandlers(svc)))

	w := doJSON(t, r, http.MethodGet, "/api/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/patients?riskLevel=HIGH", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIGH", filtered)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, float64(2), list[0]["id"])
}

func TestPatientHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		err    error
		status int
	}{
		{"get not found", http.MethodGet, "/api/patients/5", nil, domain.ErrPatientNotFound, http.StatusNotFound},
		{"get foreign", http.MethodGet, "/api/patients/5", nil, domain.ErrForbidden, http.StatusForbidden},
		{"get expired token", http.MethodGet, "/api/patients/5", nil, domain.ErrTokenExpired, http.StatusUnauthorized},
		{"update foreign", http.MethodPut, "/api/patients/5", `{}`, domain.ErrForbidden, http.StatusForbidden},
		{"update store failure", http.MethodPut, "/api/patients/5", `{}`, errors.New("deadlock"), http.StatusInternalServerError},
		{"update bad body", http.MethodPut, "/api/patients/5", `{"age":"old"}`, nil, http.StatusBadRequest},
		{"delete missing", http.MethodDelete, "/api/patients/5", nil, domain.ErrPatientNotFound, http.StatusNotFound},
		{"non numeric id", http.MethodGet, "/api/patients/abc", nil, nil, http.StatusBadRequest},
		{"zero id", http.MethodDelete, "/api/patients/0", nil, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockPatientService{
				GetOneFunc: func(ctx context.Context, token string, id uint) (*domain.Patient, error) {
					assert.Equal(t, uint(5), id)
					return nil, tt.err
				},
				UpdateFunc: func(ctx context.Context, token string, id uint, fields *domain.PatientFields) (*domain.Patient, error) {
					return nil, tt.err
				},
				DeleteFunc: func(ctx context.Context, token string, id uint) error {
					return tt.err
				},
			}
			r := newTestRouter("tok", patientRoutes(NewPatientHandlers(svc)))

			w := doJSON(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, decodeBody(t, w), "error")
		})
	}
}

func TestPatientHandlers_UpdateAndDelete(t *testing.T) {
	svc := &mocks.MockPatientService{
		UpdateFunc: func(ctx context.Context, token string, id uint, fields *domain.PatientFields) (*domain.Patient, error) {
			p := samplePatient(id)
			p.Name = fields.Name
			return p, nil
		},
	}
	r := newTestRouter("tok", patientRoutes(NewPatientHandlers(svc)))

	w := doJSON(t, r, http.MethodPut, "/api/patients/5", `{"name":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Nil(t, body["name"])
	assert.Equal(t, float64(5), body["id"])

	w = doJSON(t, r, http.MethodDelete, "/api/patients/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patient deleted successfully", decodeBody(t, w)["message"])
}

func TestAnalyticsHandlers_Dashboard(t *testing.T) {
	svc := &mocks.MockAnalyticsService{}
	r := newTestRouter("tok", func(r *gin.Engine) {
		r.GET("/api/analytics/dashboard", NewAnalyticsHandlers(svc).Dashboard)
	})

	w := doJSON(t, r, http.MethodGet, "/api/analytics/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"totalPatients": 0,
		"highRiskPatients": 0,
		"mediumRiskPatients": 0,
		"lowRiskPatients": 0,
		"diseaseDistribution": {},
		"riskTrends": {"high": 0, "medium": 0, "low": 0}
	}`, w.Body.String())

	svc.DashboardFunc = func(ctx context.Context, token string) (*domain.DashboardAnalytics, error) {
		return nil, domain.ErrTokenInvalid
	}
	w = doJSON(t, r, http.MethodGet, "/api/analytics/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
