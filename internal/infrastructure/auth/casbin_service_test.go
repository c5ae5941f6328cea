package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCasbinDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a second pooled connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestCasbinService_DefaultPolicies(t *testing.T) {
	svc, err := NewCasbinService(setupCasbinDB(t), "")
	require.NoError(t, err)

	added, err := svc.E.AddPolicies(DefaultPolicies)
	require.NoError(t, err)
	assert.True(t, added)

	// policies persist through the gorm adapter
	require.NoError(t, svc.E.LoadPolicy())
	policies, err := svc.E.GetPolicy()
	require.NoError(t, err)
	assert.Len(t, policies, len(DefaultPolicies))

	tests := []struct {
		name    string
		sub     string
		obj     string
		act     string
		allowed bool
	}{
		{"list patients", DoctorRole, "/api/patients", "GET", true},
		{"create patient", DoctorRole, "/api/patients", "POST", true},
		{"read patient", DoctorRole, "/api/patients/12", "GET", true},
		{"update patient", DoctorRole, "/api/patients/12", "PUT", true},
		{"delete patient", DoctorRole, "/api/patients/12", "DELETE", true},
		{"dashboard", DoctorRole, "/api/analytics/dashboard", "GET", true},
		{"me", DoctorRole, "/api/auth/me", "GET", true},
		{"patch not granted", DoctorRole, "/api/patients/12", "PATCH", false},
		{"unknown route", DoctorRole, "/api/admin/policies", "GET", false},
		{"unknown role", "role_guest", "/api/patients", "GET", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.E.Enforce(tt.sub, tt.obj, tt.act)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, ok)
		})
	}
}

func TestLoadModel_MissingFile(t *testing.T) {
	_, err := LoadModel("/nonexistent/model.conf")
	assert.Error(t, err)
}
