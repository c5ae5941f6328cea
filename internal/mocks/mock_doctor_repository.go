package mocks

import (
	"context"

	"github.com/you/clinicsvc/domain"
)

// MockDoctorRepository implements domain.DoctorRepository interface for testing
type MockDoctorRepository struct {
	CreateFunc                 func(ctx context.Context, doctor *domain.Doctor) error
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.Doctor, error)
	FindByEmailFunc            func(ctx context.Context, email string) (*domain.Doctor, error)
	FindByMedicalIDFunc        func(ctx context.Context, medicalID string) (*domain.Doctor, error)
	FindByEmailOrMedicalIDFunc func(ctx context.Context, email, medicalID string) (*domain.Doctor, error)
	UpdateFunc                 func(ctx context.Context, doctor *domain.Doctor) error
}

// NewMockDoctorRepository creates a new MockDoctorRepository with default behaviors
func NewMockDoctorRepository() *MockDoctorRepository {
	return &MockDoctorRepository{}
}

// Create stores a new doctor
func (m *MockDoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	// Default behavior: success with a fixed id
	doctor.ID = 1
	return nil
}

// FindByID finds a doctor by ID
func (m *MockDoctorRepository) FindByID(ctx context.Context, id uint) (*domain.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrDoctorNotFound
}

// FindByEmail finds a doctor by email
func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrDoctorNotFound
}

// FindByMedicalID finds a doctor by medical ID
func (m *MockDoctorRepository) FindByMedicalID(ctx context.Context, medicalID string) (*domain.Doctor, error) {
	if m.FindByMedicalIDFunc != nil {
		return m.FindByMedicalIDFunc(ctx, medicalID)
	}
	return nil, domain.ErrDoctorNotFound
}

// FindByEmailOrMedicalID finds a doctor matching either field
func (m *MockDoctorRepository) FindByEmailOrMedicalID(ctx context.Context, email, medicalID string) (*domain.Doctor, error) {
	if m.FindByEmailOrMedicalIDFunc != nil {
		return m.FindByEmailOrMedicalIDFunc(ctx, email, medicalID)
	}
	return nil, domain.ErrDoctorNotFound
}

// Update saves an existing doctor
func (m *MockDoctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.DoctorRepository = (*MockDoctorRepository)(nil)
