package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/clinicsvc/domain"
	"gorm.io/gorm"
)

// DoctorRepositoryImpl implements domain.DoctorRepository using GORM
type DoctorRepositoryImpl struct {
	db *gorm.DB
}

// DBDoctor represents the database model for Doctor (with GORM tags)
type DBDoctor struct {
	ID             uint       `gorm:"primaryKey"`
	Name           string     `gorm:"size:255;not null"`
	Email          string     `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string     `gorm:"column:password;not null"`
	MedicalID      string     `gorm:"column:medical_id;uniqueIndex;size:128;not null"`
	Hospital       string     `gorm:"size:255;not null"`
	HospitalPhone  string     `gorm:"column:hospital_phone;size:32;not null"`
	Specialization string     `gorm:"size:255"`
	CreatedAt      time.Time  `gorm:"index"`
	LastLogin      *time.Time `gorm:"column:last_login"`
	IsActive       bool       `gorm:"column:is_active;index"`
}

// TableName returns the table name for GORM
func (DBDoctor) TableName() string {
	return "doctors"
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) domain.DoctorRepository {
	return &DoctorRepositoryImpl{db: db}
}

// Create implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) Create(ctx context.Context, doctor *domain.Doctor) error {
	dbDoctor := r.domainToDB(doctor)
	if dbDoctor.CreatedAt.IsZero() {
		dbDoctor.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(dbDoctor).Error; err != nil {
		return err
	}
	doctor.ID = dbDoctor.ID
	doctor.CreatedAt = dbDoctor.CreatedAt
	return nil
}

// FindByID implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Doctor, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByEmail implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByMedicalID implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) FindByMedicalID(ctx context.Context, medicalID string) (*domain.Doctor, error) {
	return r.first(ctx, "medical_id = ?", medicalID)
}

// FindByEmailOrMedicalID implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) FindByEmailOrMedicalID(ctx context.Context, email, medicalID string) (*domain.Doctor, error) {
	return r.first(ctx, "email = ? OR medical_id = ?", email, medicalID)
}

// Update implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) Update(ctx context.Context, doctor *domain.Doctor) error {
	dbDoctor := r.domainToDB(doctor)
	return r.db.WithContext(ctx).Save(dbDoctor).Error
}

func (r *DoctorRepositoryImpl) first(ctx context.Context, query string, args ...interface{}) (*domain.Doctor, error) {
	var dbDoctor DBDoctor
	err := r.db.WithContext(ctx).Where(query, args...).Order("id").First(&dbDoctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbDoctor), nil
}

// domainToDB converts domain doctor to database doctor
func (r *DoctorRepositoryImpl) domainToDB(doctor *domain.Doctor) *DBDoctor {
	return &DBDoctor{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		PasswordHash:   doctor.PasswordHash,
		MedicalID:      doctor.MedicalID,
		Hospital:       doctor.Hospital,
		HospitalPhone:  doctor.HospitalPhone,
		Specialization: doctor.Specialization,
		CreatedAt:      doctor.CreatedAt,
		LastLogin:      doctor.LastLogin,
		IsActive:       doctor.IsActive,
	}
}

// dbToDomain converts database doctor to domain doctor
func (r *DoctorRepositoryImpl) dbToDomain(dbDoctor *DBDoctor) *domain.Doctor {
	return &domain.Doctor{
		ID:             dbDoctor.ID,
		Name:           dbDoctor.Name,
		Email:          dbDoctor.Email,
		PasswordHash:   dbDoctor.PasswordHash,
		MedicalID:      dbDoctor.MedicalID,
		Hospital:       dbDoctor.Hospital,
		HospitalPhone:  dbDoctor.HospitalPhone,
		Specialization: dbDoctor.Specialization,
		CreatedAt:      dbDoctor.CreatedAt,
		LastLogin:      dbDoctor.LastLogin,
		IsActive:       dbDoctor.IsActive,
	}
}
