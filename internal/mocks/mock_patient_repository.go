package mocks

import (
	"context"

	"github.com/you/clinicsvc/domain"
)

// MockPatientRepository implements domain.PatientRepository interface for testing
type MockPatientRepository struct {
	CreateFunc                   func(ctx context.Context, patient *domain.Patient) error
	FindByIDFunc                 func(ctx context.Context, id uint) (*domain.Patient, error)
	FindByDoctorFunc             func(ctx context.Context, doctorID uint) ([]*domain.Patient, error)
	FindByDoctorAndRiskLevelFunc func(ctx context.Context, doctorID uint, riskLevel string) ([]*domain.Patient, error)
	UpdateFunc                   func(ctx context.Context, patient *domain.Patient) error
	DeleteFunc                   func(ctx context.Context, id uint) error
}

// NewMockPatientRepository creates a new MockPatientRepository with default behaviors
func NewMockPatientRepository() *MockPatientRepository {
	return &MockPatientRepository{}
}

// Create stores a new patient
func (m *MockPatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	patient.ID = 1
	return nil
}

// FindByID finds a patient by ID
func (m *MockPatientRepository) FindByID(ctx context.Context, id uint) (*domain.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrPatientNotFound
}

// FindByDoctor lists a doctor's patients
func (m *MockPatientRepository) FindByDoctor(ctx context.Context, doctorID uint) ([]*domain.Patient, error) {
	if m.FindByDoctorFunc != nil {
		return m.FindByDoctorFunc(ctx, doctorID)
	}
	return []*domain.Patient{}, nil
}

// FindByDoctorAndRiskLevel lists a doctor's patients at a risk level
func (m *MockPatientRepository) FindByDoctorAndRiskLevel(ctx context.Context, doctorID uint, riskLevel string) ([]*domain.Patient, error) {
	if m.FindByDoctorAndRiskLevelFunc != nil {
		return m.FindByDoctorAndRiskLevelFunc(ctx, doctorID, riskLevel)
	}
	return []*domain.Patient{}, nil
}

// Update saves an existing patient
func (m *MockPatientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

// Delete removes a patient
func (m *MockPatientRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.PatientRepository = (*MockPatientRepository)(nil)
