package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// errNotConfigured marks a skipped channel; callers log it at most.
type errNotConfigured string

func (e errNotConfigured) Error() string { return string(e) }

// SendEmailWithSendGrid sends a plain-text email through SendGrid.
// Without an API key the channel is silently off.
func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Debug().Msg("SENDGRID_API_KEY not set, skipping email notification")
		return nil
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return errNotConfigured("SENDGRID_FROM_EMAIL is not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Prenotazioni"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}

	log.Info().Str("to", toEmailAddress).Str("subject", subject).Msg("report email sent")
	return nil
}

// SendSMS texts the configured notify number through Twilio. Without
// Twilio credentials or a notify number the channel is silently off.
func SendSMS(messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	toNumber := os.Getenv("NOTIFY_PHONE")

	if toNumber == "" {
		return nil
	}
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return errNotConfigured("Twilio credentials are not fully configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Warn().Str("to", toNumber).Msg("notify number is not E.164, SMS may fail")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("sending SMS: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Info().Str("sid", *resp.Sid).Msg("report SMS sent")
	}
	return nil
}
