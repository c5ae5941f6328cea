package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/you/clinicsvc/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// every pooled connection would otherwise open its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate the schema
	if err := db.AutoMigrate(&DBDoctor{}, &DBPatient{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func newTestDoctor(email, medicalID string) *domain.Doctor {
	return &domain.Doctor{
		Name:           "Dr. " + medicalID,
		Email:          email,
		PasswordHash:   "hashed_password",
		MedicalID:      medicalID,
		Hospital:       "General Hospital",
		HospitalPhone:  "5550100",
		Specialization: "Cardiology",
		CreatedAt:      time.Now(),
		IsActive:       true,
	}
}

func TestDoctorRepositoryImpl_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	doctor := newTestDoctor("first@example.com", "MED-1")
	if err := repo.Create(ctx, doctor); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doctor.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	tests := []struct {
		name   string
		doctor *domain.Doctor
	}{
		{"duplicate email", newTestDoctor("first@example.com", "MED-2")},
		{"duplicate medical id", newTestDoctor("second@example.com", "MED-1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(ctx, tt.doctor); err == nil {
				t.Error("expected unique constraint violation")
			}
		})
	}
}

func TestDoctorRepositoryImpl_Lookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	stored := newTestDoctor("lookup@example.com", "MED-42")
	if err := repo.Create(ctx, stored); err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}

	tests := []struct {
		name          string
		find          func() (*domain.Doctor, error)
		expectedError error
	}{
		{
			name:          "find by id",
			find:          func() (*domain.Doctor, error) { return repo.FindByID(ctx, stored.ID) },
			expectedError: nil,
		},
		{
			name:          "find by unknown id",
			find:          func() (*domain.Doctor, error) { return repo.FindByID(ctx, 999) },
			expectedError: domain.ErrDoctorNotFound,
		},
		{
			name:          "find by email",
			find:          func() (*domain.Doctor, error) { return repo.FindByEmail(ctx, "lookup@example.com") },
			expectedError: nil,
		},
		{
			name:          "find by unknown email",
			find:          func() (*domain.Doctor, error) { return repo.FindByEmail(ctx, "nobody@example.com") },
			expectedError: domain.ErrDoctorNotFound,
		},
		{
			name:          "find by medical id",
			find:          func() (*domain.Doctor, error) { return repo.FindByMedicalID(ctx, "MED-42") },
			expectedError: nil,
		},
		{
			name: "either matches on email",
			find: func() (*domain.Doctor, error) {
				return repo.FindByEmailOrMedicalID(ctx, "lookup@example.com", "OTHER")
			},
			expectedError: nil,
		},
		{
			name: "either matches on medical id",
			find: func() (*domain.Doctor, error) {
				return repo.FindByEmailOrMedicalID(ctx, "other@example.com", "MED-42")
			},
			expectedError: nil,
		},
		{
			name: "neither matches",
			find: func() (*domain.Doctor, error) {
				return repo.FindByEmailOrMedicalID(ctx, "other@example.com", "OTHER")
			},
			expectedError: domain.ErrDoctorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctor, err := tt.find()
			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if doctor != nil {
					t.Error("expected nil doctor")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if doctor.ID != stored.ID || doctor.Email != stored.Email || doctor.MedicalID != stored.MedicalID {
				t.Errorf("unexpected doctor %+v", doctor)
			}
			if doctor.PasswordHash != "hashed_password" || !doctor.IsActive {
				t.Errorf("expected credential and active flag to round-trip, got %+v", doctor)
			}
		})
	}
}

func TestDoctorRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	doctor := newTestDoctor("update@example.com", "MED-U")
	if err := repo.Create(ctx, doctor); err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	if doctor.LastLogin != nil {
		t.Fatal("new doctor should have no last login")
	}

	loginAt := time.Now().Add(time.Minute)
	doctor.LastLogin = &loginAt
	if err := repo.Update(ctx, doctor); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	reloaded, err := repo.FindByID(ctx, doctor.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.LastLogin == nil || !reloaded.LastLogin.Equal(loginAt) {
		t.Errorf("expected last login %v, got %v", loginAt, reloaded.LastLogin)
	}
	if !reloaded.CreatedAt.Equal(doctor.CreatedAt) {
		t.Errorf("created at changed from %v to %v", doctor.CreatedAt, reloaded.CreatedAt)
	}
}
