package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/you/clinicsvc/domain"
)

// Values stored on create when the caller leaves a field out
const (
	defaultPatientText  = "Unknown"
	defaultPatientAge   = 0
	defaultPatientPhone = "0000000000"
)

// PatientServiceImpl implements domain.PatientService
type PatientServiceImpl struct {
	patientRepo domain.PatientRepository
	tokenSvc    domain.TokenService
	notifier    domain.NotificationService // nil disables risk alerts
	audit       domain.AuditLogger
	now         func() time.Time
}

// NewPatientService creates a new patient service. notifier may be nil.
func NewPatientService(
	patientRepo domain.PatientRepository,
	tokenSvc domain.TokenService,
	notifier domain.NotificationService,
	audit domain.AuditLogger,
) domain.PatientService {
	if audit == nil {
		audit = discardAudit{}
	}
	return &PatientServiceImpl{
		patientRepo: patientRepo,
		tokenSvc:    tokenSvc,
		notifier:    notifier,
		audit:       audit,
		now:         time.Now,
	}
}

// Create implements domain.PatientService
func (s *PatientServiceImpl) Create(ctx context.Context, token string, fields *domain.PatientFields) (*domain.Patient, error) {
	doctorID, err := resolveCaller(s.tokenSvc, token)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = &domain.PatientFields{}
	}

	now := s.now()
	patient := &domain.Patient{
		DoctorID:  doctorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyFields(patient, fields)

	// Defaulting happens on create only
	patient.Name = textOrDefault(fields.Name, defaultPatientText)
	patient.Gender = textOrDefault(fields.Gender, defaultPatientText)
	patient.State = textOrDefault(fields.State, defaultPatientText)
	patient.City = textOrDefault(fields.City, defaultPatientText)
	patient.Phone = textOrDefault(fields.Phone, defaultPatientPhone)
	if fields.Age == nil {
		age := defaultPatientAge
		patient.Age = &age
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.PatientCreatedEvent, doctorID).WithPatient(patient.ID))
	s.alertIfHighRisk(ctx, patient)

	return patient, nil
}

// ListForCaller implements domain.PatientService
func (s *PatientServiceImpl) ListForCaller(ctx context.Context, token string) ([]*domain.Patient, error) {
	doctorID, err := resolveCaller(s.tokenSvc, token)
	if err != nil {
		return nil, err
	}

	patients, err := s.patientRepo.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// ListByRiskLevel implements domain.PatientService
func (s *PatientServiceImpl) ListByRiskLevel(ctx context.Context, token, riskLevel string) ([]*domain.Patient, error) {
	doctorID, err := resolveCaller(s.tokenSvc, token)
	if err != nil {
		return nil, err
	}

	patients, err := s.patientRepo.FindByDoctorAndRiskLevel(ctx, doctorID, strings.TrimSpace(riskLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to list patients by risk level: %w", err)
	}
	return patients, nil
}

// GetOne implements domain.PatientService
func (s *PatientServiceImpl) GetOne(ctx context.Context, token string, patientID uint) (*domain.Patient, error) {
	doctorID, err := resolveCaller(s.tokenSvc, token)
	if err != nil {
		return nil, err
	}
	return s.loadOwned(ctx, doctorID, patientID, "read")
}

// Update implements domain.PatientService
func (s *PatientServiceImpl) Update(ctx context.Context, token string, patientID uint, fields *domain.PatientFields) (*domain.Patient, error) {
	doctorID, err := resolveCaller(s.tokenSvc, token)
	if err != nil {
		return nil, err
	}

	patient, err := s.loadOwned(ctx, doctorID, patientID, "update")
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = &domain.PatientFields{}
	}

	wasHighRisk := patient.HasRiskLevel(domain.RiskHigh)

	// Every mutable field takes the supplied value, null included
	applyFields(patient, fields)
	patient.UpdatedAt = s.now()
	if patient.UpdatedAt.Before(patient.CreatedAt) {
		patient.UpdatedAt = patient.CreatedAt
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.PatientUpdatedEvent, doctorID).WithPatient(patient.ID))
	if !wasHighRisk {
		s.alertIfHighRisk(ctx, patient)
	}

	return patient, nil
}

// Delete implements domain.PatientService
func (s *PatientServiceImpl) Delete(ctx context.Context, token string, patientID uint) error {
	doctorID, err := resolveCaller(s.tokenSvc, token)
	if err != nil {
		return err
	}

	if _, err := s.loadOwned(ctx, doctorID, patientID, "delete"); err != nil {
		return err
	}

	if err := s.patientRepo.Delete(ctx, patientID); err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.PatientDeletedEvent, doctorID).WithPatient(patientID))
	return nil
}

func (s *PatientServiceImpl) loadOwned(ctx context.Context, doctorID, patientID uint, action string) (*domain.Patient, error) {
	patient, err := s.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load patient: %w", err)
	}

	if err := requireOwnership(patient, doctorID); err != nil {
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.AccessDeniedEvent, doctorID).
			WithPatient(patientID).
			WithMetadata("action", action).
			WithError(err))
		return nil, err
	}
	return patient, nil
}

// alertIfHighRisk texts the family phone. Delivery failure is audited, never returned.
func (s *PatientServiceImpl) alertIfHighRisk(ctx context.Context, patient *domain.Patient) {
	if s.notifier == nil || !patient.HasRiskLevel(domain.RiskHigh) {
		return
	}
	if patient.FamilyPhone == nil || strings.TrimSpace(*patient.FamilyPhone) == "" {
		return
	}

	name := "Your family member"
	if patient.Name != nil && *patient.Name != "" {
		name = *patient.Name
	}
	message := fmt.Sprintf("Health alert: %s has been assessed as high risk. Please contact the attending doctor.", name)

	event := domain.NewAuditEvent(domain.RiskAlertEvent, patient.DoctorID).WithPatient(patient.ID)
	if err := s.notifier.SendSMS(*patient.FamilyPhone, message); err != nil {
		event.WithError(err)
	}
	s.audit.LogEvent(ctx, event)
}

func applyFields(patient *domain.Patient, fields *domain.PatientFields) {
	patient.Name = fields.Name
	patient.Age = fields.Age
	patient.Gender = fields.Gender
	patient.Phone = fields.Phone
	patient.FamilyPhone = fields.FamilyPhone
	patient.State = fields.State
	patient.City = fields.City
	patient.Weight = fields.Weight
	patient.Height = fields.Height
	patient.Temperature = fields.Temperature
	patient.BloodPressure = fields.BloodPressure
	patient.Oxygen = fields.Oxygen
	patient.Pulse = fields.Pulse
	patient.Symptoms = listOrEmpty(fields.Symptoms)
	patient.VoiceSymptoms = fields.VoiceSymptoms
	patient.RiskLevel = fields.RiskLevel
	patient.Disease = fields.Disease
	patient.Triggers = listOrEmpty(fields.Triggers)
	patient.Recommendations = listOrEmpty(fields.Recommendations)
}

func textOrDefault(value *string, def string) *string {
	if value != nil {
		return value
	}
	return &def
}

func listOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
