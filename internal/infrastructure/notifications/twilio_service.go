package notifications

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the slice of the Twilio REST API used for SMS
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioSender delivers SMS through Twilio
type TwilioSender struct {
	api        messageCreator
	fromNumber string
	log        zerolog.Logger
}

// NewTwilioSender creates a new Twilio SMS sender
func NewTwilioSender(accountSID, authToken, fromNumber string, log zerolog.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		api:        client.Api,
		fromNumber: fromNumber,
		log:        log.With().Str("component", "sms").Logger(),
	}
}

// SendSMS sends message to the E.164 number to
func (t *TwilioSender) SendSMS(ctx context.Context, to, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// If credentials are not configured, log instead of sending
	if t.fromNumber == "" {
		t.log.Info().Str("to", to).Str("body", message).Msg("sms transport not configured, message logged only")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	resp, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		t.log.Debug().Str("to", to).Str("sid", *resp.Sid).Msg("sms sent")
	}

	return nil
}
