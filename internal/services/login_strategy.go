package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/you/clinicsvc/domain"
)

// Login modes accepted by NewLoginStrategy
const (
	LoginModeVerified   = "verified"
	LoginModePermissive = "permissive"
)

// Defaults for accounts synthesized by permissive login
const (
	synthesizedEmailDomain    = "@temp.com"
	synthesizedHospital       = "Default Hospital"
	synthesizedHospitalPhone  = "0000000000"
	synthesizedSpecialization = "General"
)

// NewLoginStrategy selects the login behavior for the configured mode.
// An empty mode means verified.
func NewLoginStrategy(
	mode string,
	doctorRepo domain.DoctorRepository,
	passwordSvc domain.PasswordService,
	throttle domain.LoginThrottle,
	logger zerolog.Logger,
) (domain.LoginStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", LoginModeVerified:
		return NewVerifiedLogin(doctorRepo, passwordSvc, throttle, logger), nil
	case LoginModePermissive:
		return NewPermissiveLogin(doctorRepo, passwordSvc), nil
	default:
		return nil, fmt.Errorf("unknown login mode %q", mode)
	}
}

// VerifiedLogin requires an existing, active doctor whose stored credential matches
type VerifiedLogin struct {
	doctorRepo  domain.DoctorRepository
	passwordSvc domain.PasswordService
	throttle    domain.LoginThrottle // optional
	logger      zerolog.Logger
}

// NewVerifiedLogin creates a verifying login strategy. throttle may be nil.
func NewVerifiedLogin(
	doctorRepo domain.DoctorRepository,
	passwordSvc domain.PasswordService,
	throttle domain.LoginThrottle,
	logger zerolog.Logger,
) *VerifiedLogin {
	return &VerifiedLogin{
		doctorRepo:  doctorRepo,
		passwordSvc: passwordSvc,
		throttle:    throttle,
		logger:      logger,
	}
}

// Authenticate implements domain.LoginStrategy
func (l *VerifiedLogin) Authenticate(ctx context.Context, identifier, password string) (*domain.Doctor, error) {
	if l.throttle != nil {
		allowed, err := l.throttle.Allow(ctx, identifier)
		if err != nil {
			return nil, fmt.Errorf("failed to check login attempts: %w", err)
		}
		if !allowed {
			return nil, domain.ErrTooManyLoginAttempts
		}
	}

	doctor, err := l.doctorRepo.FindByEmailOrMedicalID(ctx, identifier, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			l.recordFailure(ctx, identifier)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find doctor: %w", err)
	}

	if !l.passwordSvc.Verify(doctor.PasswordHash, password) {
		l.recordFailure(ctx, identifier)
		return nil, domain.ErrInvalidCredentials
	}

	if !doctor.IsActive {
		return nil, domain.ErrDoctorInactive
	}

	if l.throttle != nil {
		if err := l.throttle.Reset(ctx, identifier); err != nil {
			l.logger.Warn().Err(err).Str("identifier", identifier).Msg("failed to reset login attempts")
		}
	}

	return doctor, nil
}

func (l *VerifiedLogin) recordFailure(ctx context.Context, identifier string) {
	if l.throttle == nil {
		return
	}
	if err := l.throttle.RecordFailure(ctx, identifier); err != nil {
		l.logger.Warn().Err(err).Str("identifier", identifier).Msg("failed to record login failure")
	}
}

// PermissiveLogin accepts any identifier. Unknown identifiers get a
// synthesized account; the password is never checked.
type PermissiveLogin struct {
	doctorRepo  domain.DoctorRepository
	passwordSvc domain.PasswordService
	now         func() time.Time
}

// NewPermissiveLogin creates the development-only login strategy
func NewPermissiveLogin(doctorRepo domain.DoctorRepository, passwordSvc domain.PasswordService) *PermissiveLogin {
	return &PermissiveLogin{
		doctorRepo:  doctorRepo,
		passwordSvc: passwordSvc,
		now:         time.Now,
	}
}

// Authenticate implements domain.LoginStrategy
func (l *PermissiveLogin) Authenticate(ctx context.Context, identifier, _ string) (*domain.Doctor, error) {
	doctor, err := l.doctorRepo.FindByEmailOrMedicalID(ctx, identifier, identifier)
	if err == nil {
		return doctor, nil
	}
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		return nil, fmt.Errorf("failed to find doctor: %w", err)
	}

	// The stored credential hashes a throwaway secret, so a synthesized
	// account can never pass verified login.
	secret, err := randomSecret()
	if err != nil {
		return nil, err
	}
	hashed, err := l.passwordSvc.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := identifier
	if !strings.Contains(identifier, "@") {
		email = identifier + synthesizedEmailDomain
	}

	doctor = &domain.Doctor{
		Name:           "Dr. " + identifier,
		Email:          email,
		PasswordHash:   hashed,
		MedicalID:      identifier,
		Hospital:       synthesizedHospital,
		HospitalPhone:  synthesizedHospitalPhone,
		Specialization: synthesizedSpecialization,
		CreatedAt:      l.now(),
		IsActive:       true,
	}
	if err := l.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	return doctor, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
