package mocks

import "github.com/you/clinicsvc/domain"

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	EnsurePoliciesFunc  func(rules [][]string) (int, error)
	CheckPermissionFunc func(role, resource, action string) (bool, error)
	GetPoliciesFunc     func() ([][]string, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// EnsurePolicies reports every rule as added
func (m *MockPolicyService) EnsurePolicies(rules [][]string) (int, error) {
	if m.EnsurePoliciesFunc != nil {
		return m.EnsurePoliciesFunc(rules)
	}
	return len(rules), nil
}

// CheckPermission allows everything unless overridden
func (m *MockPolicyService) CheckPermission(role, resource, action string) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(role, resource, action)
	}
	return true, nil
}

func (m *MockPolicyService) GetPolicies() ([][]string, error) {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	return [][]string{}, nil
}

var _ domain.PolicyService = (*MockPolicyService)(nil)
