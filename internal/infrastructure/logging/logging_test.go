package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/clinicsvc/domain"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{name: "debug", level: "debug", debugSeen: true, infoSeen: true},
		{name: "info", level: "info", debugSeen: false, infoSeen: true},
		{name: "warn hides info", level: "WARN", debugSeen: false, infoSeen: false},
		{name: "unknown falls back to info", level: "verbose", debugSeen: false, infoSeen: true},
		{name: "empty falls back to info", level: "", debugSeen: false, infoSeen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.level, false, &buf)

			logger.Debug().Msg("debug-line")
			logger.Info().Msg("info-line")

			assert.Equal(t, tt.debugSeen, strings.Contains(buf.String(), "debug-line"))
			assert.Equal(t, tt.infoSeen, strings.Contains(buf.String(), "info-line"))
		})
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", false, &buf)
	logger.Info().Msg("hello")

	entry := lastLine(t, &buf)
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "clinicsvc", entry["service"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", true, &buf)
	logger.Info().Msg("readable")

	out := buf.String()
	assert.Contains(t, out, "readable")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestZerologAuditLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	audit := NewAuditLogger(New("info", false, &buf))

	audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.PatientCreatedEvent, 7).
		WithPatient(42).
		WithMetadata("source", "api"))

	entry := lastLine(t, &buf)
	assert.Equal(t, "audit", entry["message"])
	assert.Equal(t, "audit", entry["component"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "PATIENT_CREATED", entry["event_type"])
	assert.Equal(t, float64(7), entry["doctor_id"])
	assert.Equal(t, float64(42), entry["patient_id"])
	assert.Equal(t, "api", entry["source"])
	assert.Equal(t, true, entry["success"])
}

func TestZerologAuditLogger_Failure(t *testing.T) {
	var buf bytes.Buffer
	audit := NewAuditLogger(New("info", false, &buf))

	audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.DoctorLoginFailureEvent, 0).
		WithEmail("doc@example.com").
		WithError(errors.New("invalid credentials")))

	entry := lastLine(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "doc@example.com", entry["email"])
	assert.Equal(t, "invalid credentials", entry["error"])
	assert.Equal(t, false, entry["success"])
	assert.NotContains(t, entry, "patient_id")
}

func TestZerologAuditLogger_NilEvent(t *testing.T) {
	var buf bytes.Buffer
	NewAuditLogger(New("info", false, &buf)).LogEvent(context.Background(), nil)
	assert.Empty(t, buf.String())
}
