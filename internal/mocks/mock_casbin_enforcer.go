package mocks

import "github.com/you/clinicsvc/domain"

// MockCasbinEnforcer implements the CasbinEnforcer interface for testing
type MockCasbinEnforcer struct {
	HasPolicyFunc func(params ...interface{}) (bool, error)
	AddPolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc   func(rvals ...interface{}) (bool, error)
	GetPolicyFunc func() ([][]string, error)
	policies      [][]string
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{}
}

// HasPolicy reports whether the exact rule is stored
func (m *MockCasbinEnforcer) HasPolicy(params ...interface{}) (bool, error) {
	if m.HasPolicyFunc != nil {
		return m.HasPolicyFunc(params...)
	}
	policy := toStrings(params)
	for _, existing := range m.policies {
		if equalPolicy(existing, policy) {
			return true, nil
		}
	}
	return false, nil
}

// AddPolicy adds a new policy rule. Like casbin, it reports true for a rule that is already stored.
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}

	policy := toStrings(params)
	if len(policy) < 3 {
		return false, nil
	}
	for _, existing := range m.policies {
		if equalPolicy(existing, policy) {
			return true, nil
		}
	}
	m.policies = append(m.policies, policy)
	return true, nil
}

// Enforce allows a request only on an exact policy match
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}

	request := toStrings(rvals)
	for _, policy := range m.policies {
		if equalPolicy(policy, request) {
			return true, nil
		}
	}
	return false, nil
}

// GetPolicy returns all policies
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	result := make([][]string, len(m.policies))
	for i, policy := range m.policies {
		result[i] = append([]string(nil), policy...)
	}
	return result, nil
}

func toStrings(params []interface{}) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		if s, ok := p.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func equalPolicy(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
