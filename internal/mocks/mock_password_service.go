package mocks

import (
	"strings"

	"github.com/you/clinicsvc/domain"
)

// HashPrefix marks values produced by MockPasswordService.Hash
const HashPrefix = "hashed_"

// MockPasswordService hashes by prefixing, so tests can read stored credentials
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool

	HashCalls int
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	m.HashCalls++
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return HashPrefix + password, nil
}

// Verify accepts only a HashPrefix value built from password
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return strings.HasPrefix(hashedPassword, HashPrefix) && hashedPassword == HashPrefix+password
}

var _ domain.PasswordService = (*MockPasswordService)(nil)
