package mocks

import (
	"context"

	"github.com/you/clinicsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, reg *domain.DoctorRegistration) (*domain.AuthResult, error)
	LoginFunc         func(ctx context.Context, identifier, password string) (*domain.AuthResult, error)
	CurrentDoctorFunc func(ctx context.Context, token string) (*domain.DoctorProfile, error)
}

// Register registers a doctor
func (m *MockAuthService) Register(ctx context.Context, reg *domain.DoctorRegistration) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	return &domain.AuthResult{Token: "mock_token", Doctor: &domain.DoctorProfile{ID: 1, Email: reg.Email}}, nil
}

// Login authenticates a doctor
func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// CurrentDoctor returns the token owner's profile
func (m *MockAuthService) CurrentDoctor(ctx context.Context, token string) (*domain.DoctorProfile, error) {
	if m.CurrentDoctorFunc != nil {
		return m.CurrentDoctorFunc(ctx, token)
	}
	return &domain.DoctorProfile{ID: 1}, nil
}

// MockPatientService implements domain.PatientService interface for testing
type MockPatientService struct {
	CreateFunc          func(ctx context.Context, token string, fields *domain.PatientFields) (*domain.Patient, error)
	ListForCallerFunc   func(ctx context.Context, token string) ([]*domain.Patient, error)
	ListByRiskLevelFunc func(ctx context.Context, token, riskLevel string) ([]*domain.Patient, error)
	GetOneFunc          func(ctx context.Context, token string, patientID uint) (*domain.Patient, error)
	UpdateFunc          func(ctx context.Context, token string, patientID uint, fields *domain.PatientFields) (*domain.Patient, error)
	DeleteFunc          func(ctx context.Context, token string, patientID uint) error
}

// Create creates a patient
func (m *MockPatientService) Create(ctx context.Context, token string, fields *domain.PatientFields) (*domain.Patient, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, fields)
	}
	return &domain.Patient{ID: 1, DoctorID: 1}, nil
}

// ListForCaller lists the caller's patients
func (m *MockPatientService) ListForCaller(ctx context.Context, token string) ([]*domain.Patient, error) {
	if m.ListForCallerFunc != nil {
		return m.ListForCallerFunc(ctx, token)
	}
	return []*domain.Patient{}, nil
}

// ListByRiskLevel lists the caller's patients at a risk level
func (m *MockPatientService) ListByRiskLevel(ctx context.Context, token, riskLevel string) ([]*domain.Patient, error) {
	if m.ListByRiskLevelFunc != nil {
		return m.ListByRiskLevelFunc(ctx, token, riskLevel)
	}
	return []*domain.Patient{}, nil
}

// GetOne returns one owned patient
func (m *MockPatientService) GetOne(ctx context.Context, token string, patientID uint) (*domain.Patient, error) {
	if m.GetOneFunc != nil {
		return m.GetOneFunc(ctx, token, patientID)
	}
	return nil, domain.ErrPatientNotFound
}

// Update replaces an owned patient's fields
func (m *MockPatientService) Update(ctx context.Context, token string, patientID uint, fields *domain.PatientFields) (*domain.Patient, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, patientID, fields)
	}
	return nil, domain.ErrPatientNotFound
}

// Delete removes an owned patient
func (m *MockPatientService) Delete(ctx context.Context, token string, patientID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, patientID)
	}
	return nil
}

// MockAnalyticsService implements domain.AnalyticsService interface for testing
type MockAnalyticsService struct {
	DashboardFunc func(ctx context.Context, token string) (*domain.DashboardAnalytics, error)
}

// Dashboard summarises the caller's patients
func (m *MockAnalyticsService) Dashboard(ctx context.Context, token string) (*domain.DashboardAnalytics, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx, token)
	}
	return &domain.DashboardAnalytics{
		DiseaseDistribution: map[string]int{},
		RiskTrends:          map[string]int{domain.RiskHigh: 0, domain.RiskMedium: 0, domain.RiskLow: 0},
	}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.AuthService      = (*MockAuthService)(nil)
	_ domain.PatientService   = (*MockPatientService)(nil)
	_ domain.AnalyticsService = (*MockAnalyticsService)(nil)
)
