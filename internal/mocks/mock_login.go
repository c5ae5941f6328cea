package mocks

import (
	"context"

	"github.com/you/clinicsvc/domain"
)

// MockLoginStrategy implements domain.LoginStrategy interface for testing
type MockLoginStrategy struct {
	AuthenticateFunc func(ctx context.Context, identifier, password string) (*domain.Doctor, error)
}

// Authenticate resolves the doctor behind a login attempt
func (m *MockLoginStrategy) Authenticate(ctx context.Context, identifier, password string) (*domain.Doctor, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, identifier, password)
	}
	// Default behavior: reject
	return nil, domain.ErrInvalidCredentials
}

// MockLoginThrottle implements domain.LoginThrottle interface for testing
type MockLoginThrottle struct {
	AllowFunc         func(ctx context.Context, identifier string) (bool, error)
	RecordFailureFunc func(ctx context.Context, identifier string) error
	ResetFunc         func(ctx context.Context, identifier string) error
}

// Allow reports whether another attempt is permitted
func (m *MockLoginThrottle) Allow(ctx context.Context, identifier string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, identifier)
	}
	return true, nil
}

// RecordFailure counts a failed attempt
func (m *MockLoginThrottle) RecordFailure(ctx context.Context, identifier string) error {
	if m.RecordFailureFunc != nil {
		return m.RecordFailureFunc(ctx, identifier)
	}
	return nil
}

// Reset clears the failure count
func (m *MockLoginThrottle) Reset(ctx context.Context, identifier string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, identifier)
	}
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.LoginStrategy = (*MockLoginStrategy)(nil)
	_ domain.LoginThrottle = (*MockLoginThrottle)(nil)
)
