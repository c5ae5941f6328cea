package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/you/clinicsvc/domain"
)

// ZerologAuditLogger writes audit events as structured log lines
type ZerologAuditLogger struct {
	logger zerolog.Logger
}

// NewAuditLogger creates an audit logger on top of logger
func NewAuditLogger(logger zerolog.Logger) domain.AuditLogger {
	return &ZerologAuditLogger{
		logger: logger.With().Str("component", "audit").Logger(),
	}
}

// LogEvent implements domain.AuditLogger
func (l *ZerologAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) {
	if event == nil {
		return
	}

	e := l.logger.Info()
	if !event.Success {
		e = l.logger.Warn()
	}

	e = e.Str("event_type", string(event.EventType)).
		Uint("doctor_id", event.DoctorID).
		Time("event_time", event.Timestamp).
		Bool("success", event.Success)

	if event.PatientID != 0 {
		e = e.Uint("patient_id", event.PatientID)
	}
	if event.Email != "" {
		e = e.Str("email", event.Email)
	}
	if event.ErrorMsg != "" {
		e = e.Str("error", event.ErrorMsg)
	}
	if len(event.Metadata) > 0 {
		e = e.Fields(event.Metadata)
	}

	e.Msg("audit")
}
