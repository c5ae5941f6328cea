package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAuthenticationErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "ErrDoctorNotFound",
			err:         ErrDoctorNotFound,
			expectedMsg: "doctor not found",
		},
		{
			name:        "ErrInvalidCredentials",
			err:         ErrInvalidCredentials,
			expectedMsg: "invalid credentials",
		},
		{
			name:        "ErrDoctorAlreadyExists",
			err:         ErrDoctorAlreadyExists,
			expectedMsg: "doctor with this email or medical ID already exists",
		},
		{
			name:        "ErrDoctorInactive",
			err:         ErrDoctorInactive,
			expectedMsg: "doctor account is inactive",
		},
		{
			name:        "ErrTooManyLoginAttempts",
			err:         ErrTooManyLoginAttempts,
			expectedMsg: "too many failed login attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected error message %q, got %q", tt.expectedMsg, tt.err.Error())
			}

			// Test that these are different errors
			for _, other := range tests {
				if other.name != tt.name && errors.Is(tt.err, other.err) {
					t.Errorf("error %s should not be equal to %s", tt.name, other.name)
				}
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"duplicate doctor", ErrDoctorAlreadyExists, KindConflict},
		{"invalid token", ErrTokenInvalid, KindInvalidToken},
		{"expired token", ErrTokenExpired, KindInvalidToken},
		{"malformed token", ErrTokenMalformed, KindInvalidToken},
		{"unknown doctor", ErrDoctorNotFound, KindNotFound},
		{"unknown patient", ErrPatientNotFound, KindNotFound},
		{"foreign patient", ErrForbidden, KindForbidden},
		{"inactive doctor", ErrDoctorInactive, KindForbidden},
		{"bad credentials", ErrInvalidCredentials, KindInvalidCredentials},
		{"locked out", ErrTooManyLoginAttempts, KindTooManyAttempts},
		{"wrapped sentinel", fmt.Errorf("load patient: %w", ErrPatientNotFound), KindNotFound},
		{"store failure", errors.New("connection refused"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("expected kind %s, got %s", tt.expected, got)
			}
		})
	}
}
