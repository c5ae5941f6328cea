package domain

import (
	"context"
	"time"
)

// DoctorRepository defines doctor data access operations
type DoctorRepository interface {
	Create(ctx context.Context, doctor *Doctor) error
	FindByID(ctx context.Context, id uint) (*Doctor, error)
	FindByEmail(ctx context.Context, email string) (*Doctor, error)
	FindByMedicalID(ctx context.Context, medicalID string) (*Doctor, error)
	FindByEmailOrMedicalID(ctx context.Context, email, medicalID string) (*Doctor, error)
	Update(ctx context.Context, doctor *Doctor) error
}

// PatientRepository defines patient data access operations
type PatientRepository interface {
	Create(ctx context.Context, patient *Patient) error
	FindByID(ctx context.Context, id uint) (*Patient, error)
	// FindByDoctor returns the doctor's patients, most recently created first
	FindByDoctor(ctx context.Context, doctorID uint) ([]*Patient, error)
	FindByDoctorAndRiskLevel(ctx context.Context, doctorID uint, riskLevel string) ([]*Patient, error)
	Update(ctx context.Context, patient *Patient) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, reg *DoctorRegistration) (*AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	CurrentDoctor(ctx context.Context, token string) (*DoctorProfile, error)
}

// LoginStrategy resolves the doctor behind a login attempt
type LoginStrategy interface {
	Authenticate(ctx context.Context, identifier, password string) (*Doctor, error)
}

// LoginThrottle limits repeated failed logins per identifier
type LoginThrottle interface {
	Allow(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}

// PatientService defines patient record business logic
type PatientService interface {
	Create(ctx context.Context, token string, fields *PatientFields) (*Patient, error)
	ListForCaller(ctx context.Context, token string) ([]*Patient, error)
	ListByRiskLevel(ctx context.Context, token, riskLevel string) ([]*Patient, error)
	GetOne(ctx context.Context, token string, patientID uint) (*Patient, error)
	Update(ctx context.Context, token string, patientID uint, fields *PatientFields) (*Patient, error)
	Delete(ctx context.Context, token string, patientID uint) error
}

// AnalyticsService defines dashboard analytics
type AnalyticsService interface {
	Dashboard(ctx context.Context, token string) (*DashboardAnalytics, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	Issue(doctorID uint, email string) (string, error)
	Verify(token string) (*TokenClaims, error)
	TTL() time.Duration
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// PolicyService defines route authorization policy operations
type PolicyService interface {
	// EnsurePolicies stores the rules not present yet and reports how many were added
	EnsurePolicies(rules [][]string) (int, error)
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() ([][]string, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	HasPolicy(params ...interface{}) (bool, error)
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
}
