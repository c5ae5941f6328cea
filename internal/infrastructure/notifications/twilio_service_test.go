package notifications

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwilioService_LogsWhenSenderMissing(t *testing.T) {
	var buf bytes.Buffer
	svc := NewTwilioService("", "", "", zerolog.New(&buf))

	err := svc.SendSMS("+15551234567", "Health alert: Ana has been assessed as high risk.")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "sms delivery disabled")
	assert.Contains(t, out, "+15551234567")
	assert.Contains(t, out, `"component":"sms"`)
}

func TestTwilioService_RequiresRecipient(t *testing.T) {
	svc := NewTwilioService("AC123", "token", "+15550000000", zerolog.Nop())

	for _, to := range []string{"", "   "} {
		err := svc.SendSMS(to, "hello")
		assert.ErrorIs(t, err, errNoRecipient)
	}
}
