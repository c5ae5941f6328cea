package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/clinicsvc/domain"
	"gorm.io/gorm"
)

// PatientRepositoryImpl implements domain.PatientRepository using GORM
type PatientRepositoryImpl struct {
	db *gorm.DB
}

// DBPatient represents the database model for Patient (with GORM tags).
// Timestamps are written by the service, never by GORM.
type DBPatient struct {
	ID              uint       `gorm:"primaryKey"`
	DoctorID        uint       `gorm:"column:doctor_id;index;not null"`
	Name            *string    `gorm:"size:255"`
	Age             *int
	Gender          *string    `gorm:"size:32"`
	Phone           *string    `gorm:"size:32"`
	FamilyPhone     *string    `gorm:"column:family_phone;size:32"`
	State           *string    `gorm:"size:128"`
	City            *string    `gorm:"size:128"`
	Weight          *float64
	Height          *float64
	Temperature     *float64
	BloodPressure   *string    `gorm:"column:blood_pressure;size:32"`
	Oxygen          *float64
	Pulse           *int
	Symptoms        StringList `gorm:"type:text"`
	VoiceSymptoms   *string    `gorm:"column:voice_symptoms;type:text"`
	RiskLevel       *string    `gorm:"column:risk_level;size:32;index"`
	Disease         *string    `gorm:"size:255"`
	Triggers        StringList `gorm:"type:text"`
	Recommendations StringList `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"autoCreateTime:false;index"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime:false"`
}

// TableName returns the table name for GORM
func (DBPatient) TableName() string {
	return "patients"
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) domain.PatientRepository {
	return &PatientRepositoryImpl{db: db}
}

// Create implements domain.PatientRepository
func (r *PatientRepositoryImpl) Create(ctx context.Context, patient *domain.Patient) error {
	dbPatient := r.domainToDB(patient)
	if err := r.db.WithContext(ctx).Create(dbPatient).Error; err != nil {
		return err
	}
	patient.ID = dbPatient.ID
	return nil
}

// FindByID implements domain.PatientRepository
func (r *PatientRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Patient, error) {
	var dbPatient DBPatient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPatient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbPatient), nil
}

// FindByDoctor implements domain.PatientRepository
func (r *PatientRepositoryImpl) FindByDoctor(ctx context.Context, doctorID uint) ([]*domain.Patient, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("doctor_id = ?", doctorID))
}

// FindByDoctorAndRiskLevel implements domain.PatientRepository
func (r *PatientRepositoryImpl) FindByDoctorAndRiskLevel(ctx context.Context, doctorID uint, riskLevel string) ([]*domain.Patient, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("doctor_id = ? AND LOWER(risk_level) = LOWER(?)", doctorID, riskLevel))
}

// Update implements domain.PatientRepository.
// Every mutable column is written, nil values included; owner and creation time are left alone.
func (r *PatientRepositoryImpl) Update(ctx context.Context, patient *domain.Patient) error {
	dbPatient := r.domainToDB(patient)
	result := r.db.WithContext(ctx).
		Model(&DBPatient{ID: patient.ID}).
		Select("*").
		Omit("ID", "DoctorID", "CreatedAt").
		Updates(dbPatient)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

// Delete implements domain.PatientRepository
func (r *PatientRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBPatient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepositoryImpl) find(ctx context.Context, query *gorm.DB) ([]*domain.Patient, error) {
	var rows []DBPatient
	if err := query.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	patients := make([]*domain.Patient, 0, len(rows))
	for i := range rows {
		patients = append(patients, r.dbToDomain(&rows[i]))
	}
	return patients, nil
}

// domainToDB converts domain patient to database patient
func (r *PatientRepositoryImpl) domainToDB(p *domain.Patient) *DBPatient {
	return &DBPatient{
		ID:              p.ID,
		DoctorID:        p.DoctorID,
		Name:            p.Name,
		Age:             p.Age,
		Gender:          p.Gender,
		Phone:           p.Phone,
		FamilyPhone:     p.FamilyPhone,
		State:           p.State,
		City:            p.City,
		Weight:          p.Weight,
		Height:          p.Height,
		Temperature:     p.Temperature,
		BloodPressure:   p.BloodPressure,
		Oxygen:          p.Oxygen,
		Pulse:           p.Pulse,
		Symptoms:        StringList(p.Symptoms),
		VoiceSymptoms:   p.VoiceSymptoms,
		RiskLevel:       p.RiskLevel,
		Disease:         p.Disease,
		Triggers:        StringList(p.Triggers),
		Recommendations: StringList(p.Recommendations),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// dbToDomain converts database patient to domain patient
func (r *PatientRepositoryImpl) dbToDomain(p *DBPatient) *domain.Patient {
	return &domain.Patient{
		ID:              p.ID,
		DoctorID:        p.DoctorID,
		Name:            p.Name,
		Age:             p.Age,
		Gender:          p.Gender,
		Phone:           p.Phone,
		FamilyPhone:     p.FamilyPhone,
		State:           p.State,
		City:            p.City,
		Weight:          p.Weight,
		Height:          p.Height,
		Temperature:     p.Temperature,
		BloodPressure:   p.BloodPressure,
		Oxygen:          p.Oxygen,
		Pulse:           p.Pulse,
		Symptoms:        nonNil(p.Symptoms),
		VoiceSymptoms:   p.VoiceSymptoms,
		RiskLevel:       p.RiskLevel,
		Disease:         p.Disease,
		Triggers:        nonNil(p.Triggers),
		Recommendations: nonNil(p.Recommendations),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// nonNil guards against rows that never went through Scan
func nonNil(l StringList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
