package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Authentication events
	DoctorRegistrationEvent AuditEventType = "DOCTOR_REGISTERED"
	DoctorLoginEvent        AuditEventType = "DOCTOR_LOGIN"
	DoctorLoginFailureEvent AuditEventType = "DOCTOR_LOGIN_FAILED"

	// Patient record events
	PatientCreatedEvent AuditEventType = "PATIENT_CREATED"
	PatientUpdatedEvent AuditEventType = "PATIENT_UPDATED"
	PatientDeletedEvent AuditEventType = "PATIENT_DELETED"
	AccessDeniedEvent   AuditEventType = "ACCESS_DENIED"

	RiskAlertEvent AuditEventType = "RISK_ALERT_SENT"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType         `json:"event_type"`
	DoctorID  uint                   `json:"doctor_id"`
	PatientID uint                   `json:"patient_id,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ErrorMsg  string                 `json:"error_msg,omitempty"`
	Success   bool                   `json:"success"`
}

// AuditLogger records audit events
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, doctorID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		DoctorID:  doctorID,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithPatient sets the patient the event refers to
func (e *AuditEvent) WithPatient(patientID uint) *AuditEvent {
	e.PatientID = patientID
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	e.Metadata[key] = value
	return e
}
