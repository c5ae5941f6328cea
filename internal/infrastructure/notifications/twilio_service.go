package notifications

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/you/clinicsvc/domain"
)

var errNoRecipient = errors.New("sms recipient is required")

// TwilioServiceImpl implements domain.NotificationService
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
	logger     zerolog.Logger
}

// NewTwilioService creates a new Twilio notification service.
// With no sender number configured messages are logged instead of sent.
func NewTwilioService(accountSID, authToken, fromNumber string, logger zerolog.Logger) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
		logger:     logger.With().Str("component", "sms").Logger(),
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return errNoRecipient
	}

	if t.fromNumber == "" {
		t.logger.Info().Str("to", to).Str("body", message).Msg("sms delivery disabled, message not sent")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		t.logger.Debug().Str("to", to).Str("sid", *resp.Sid).Msg("sms sent")
	}
	return nil
}
