package mocks

import (
	"fmt"
	"time"

	"github.com/you/clinicsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc  func(doctorID uint, email string) (string, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
	TTLValue   time.Duration
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{TTLValue: 24 * time.Hour}
}

// Issue creates a token for the doctor
func (m *MockTokenService) Issue(doctorID uint, email string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(doctorID, email)
	}
	// Default behavior: return a readable mock token
	return fmt.Sprintf("token_doctor_%d", doctorID), nil
}

// Verify validates a token and returns claims
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: any non-empty token belongs to doctor 1
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	now := time.Now().Unix()
	return &domain.TokenClaims{
		DoctorID:  1,
		Email:     "doctor@example.com",
		IssuedAt:  now,
		ExpiresAt: now + int64(m.TTL()/time.Second),
	}, nil
}

// TTL returns the configured token lifetime
func (m *MockTokenService) TTL() time.Duration {
	return m.TTLValue
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
