package services

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/you/clinicsvc/domain"
)

// CasbinEnforcerWrapper adapts *casbin.Enforcer to domain.CasbinEnforcer
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

// NewCasbinEnforcerWrapper creates a wrapper for the real Casbin enforcer
func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) HasPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.HasPolicy(params...)
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

// PolicyServiceImpl answers route authorization questions for doctor roles
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a policy service over a casbin enforcer
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return NewPolicyServiceWithEnforcer(NewCasbinEnforcerWrapper(enforcer))
}

func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer}
}

// EnsurePolicies implements domain.PolicyService. Each rule is role, resource, action.
// Stored rules are skipped; AddPolicy alone does not report whether a rule already existed.
// An enforcer built over an adapter persists every added rule itself.
func (p *PolicyServiceImpl) EnsurePolicies(rules [][]string) (int, error) {
	added := 0
	for _, rule := range rules {
		if len(rule) != 3 {
			return added, fmt.Errorf("policy rule %v: want role, resource and action", rule)
		}
		exists, err := p.enforcer.HasPolicy(rule[0], rule[1], rule[2])
		if err != nil {
			return added, fmt.Errorf("failed to check policy %v: %w", rule, err)
		}
		if exists {
			continue
		}
		if _, err := p.enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return added, fmt.Errorf("failed to add policy %v: %w", rule, err)
		}
		added++
	}
	return added, nil
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() ([][]string, error) {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to read policies: %w", err)
	}
	return policies, nil
}
