package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/clinicsvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	doctorRepo    domain.DoctorRepository
	passwordSvc   domain.PasswordService
	tokenSvc      domain.TokenService
	loginStrategy domain.LoginStrategy
	audit         domain.AuditLogger
	now           func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	doctorRepo domain.DoctorRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	loginStrategy domain.LoginStrategy,
	audit domain.AuditLogger,
) domain.AuthService {
	if audit == nil {
		audit = discardAudit{}
	}
	return &AuthServiceImpl{
		doctorRepo:    doctorRepo,
		passwordSvc:   passwordSvc,
		tokenSvc:      tokenSvc,
		loginStrategy: loginStrategy,
		audit:         audit,
		now:           time.Now,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, reg *domain.DoctorRegistration) (*domain.AuthResult, error) {
	// One combined lookup: a clash on either unique field is a conflict
	existing, err := s.doctorRepo.FindByEmailOrMedicalID(ctx, reg.Email, reg.MedicalID)
	if err == nil && existing != nil {
		return nil, domain.ErrDoctorAlreadyExists
	}
	if err != nil && !errors.Is(err, domain.ErrDoctorNotFound) {
		return nil, fmt.Errorf("failed to check existing doctor: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor := &domain.Doctor{
		Name:           reg.Name,
		Email:          reg.Email,
		PasswordHash:   hashedPassword,
		MedicalID:      reg.MedicalID,
		Hospital:       reg.Hospital,
		HospitalPhone:  reg.HospitalPhone,
		Specialization: reg.Specialization,
		CreatedAt:      s.now(),
		IsActive:       true,
	}

	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	result, err := s.issue(doctor)
	if err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.DoctorRegistrationEvent, doctor.ID).
		WithEmail(doctor.Email).
		WithMetadata("medical_id", doctor.MedicalID))

	return result, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	doctor, err := s.loginStrategy.Authenticate(ctx, identifier, password)
	if err != nil {
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.DoctorLoginFailureEvent, 0).
			WithMetadata("identifier", identifier).
			WithError(err))
		return nil, err
	}

	loginAt := s.now()
	doctor.LastLogin = &loginAt
	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	result, err := s.issue(doctor)
	if err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.DoctorLoginEvent, doctor.ID).WithEmail(doctor.Email))

	return result, nil
}

// CurrentDoctor implements domain.AuthService
func (s *AuthServiceImpl) CurrentDoctor(ctx context.Context, token string) (*domain.DoctorProfile, error) {
	claims, err := s.tokenSvc.Verify(token)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctorRepo.FindByID(ctx, claims.DoctorID)
	if err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}

	return doctor.Profile(), nil
}

func (s *AuthServiceImpl) issue(doctor *domain.Doctor) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Issue(doctor.ID, doctor.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &domain.AuthResult{
		Token:     token,
		Doctor:    doctor.Profile(),
		ExpiresIn: int64(s.tokenSvc.TTL() / time.Second),
	}, nil
}
