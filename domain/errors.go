package domain

import "errors"

// Authentication errors
var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrDoctorAlreadyExists  = errors.New("doctor with this email or medical ID already exists")
	ErrDoctorInactive       = errors.New("doctor account is inactive")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Patient errors
var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrForbidden       = errors.New("unauthorized access to patient data")
)

// Kind is the caller-visible class of a failure
type Kind string

const (
	KindConflict           Kind = "Conflict"
	KindInvalidToken       Kind = "InvalidToken"
	KindNotFound           Kind = "NotFound"
	KindForbidden          Kind = "Forbidden"
	KindInvalidCredentials Kind = "InvalidCredentials"
	KindTooManyAttempts    Kind = "TooManyAttempts"
	KindInternal           Kind = "Internal"
)

var errorKinds = []struct {
	err  error
	kind Kind
}{
	{ErrDoctorAlreadyExists, KindConflict},
	{ErrTokenInvalid, KindInvalidToken},
	{ErrTokenExpired, KindInvalidToken},
	{ErrTokenMalformed, KindInvalidToken},
	{ErrDoctorNotFound, KindNotFound},
	{ErrPatientNotFound, KindNotFound},
	{ErrForbidden, KindForbidden},
	{ErrDoctorInactive, KindForbidden},
	{ErrInvalidCredentials, KindInvalidCredentials},
	{ErrTooManyLoginAttempts, KindTooManyAttempts},
}

// KindOf classifies err. Unknown errors, including store failures, are KindInternal.
func KindOf(err error) Kind {
	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			return ek.kind
		}
	}
	return KindInternal
}
