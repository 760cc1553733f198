package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"prenotazioni/internal/entities"
)

// SenderService turns a finished run into user notifications. Email
// and SMS are each best-effort and independently optional: missing
// credentials just skip that channel.
type SenderService struct {
	sendEmail func(toEmail, toName, subject, body string) error
	sendSMS   func(body string) error
}

func NewSenderService() *SenderService {
	return &SenderService{
		sendEmail: SendEmailWithSendGrid,
		sendSMS:   SendSMS,
	}
}

// SendRunReport emails the report to the contact and, when a notify
// number is configured, texts a one-line summary. Both sends complete
// before it returns.
func (s *SenderService) SendRunReport(report *entities.RunReport, contact entities.ContactInfo) {
	subject := fmt.Sprintf("Seat bookings: %d confirmed, %d failed, %d unmatched",
		report.SubmittedCount(), report.FailedCount(), len(report.Unmatched))

	body := buildReportBody(report, contact)

	if err := s.sendEmail(contact.Email, contact.FirstName, subject, body); err != nil {
		log.Error().Err(err).Str("email", contact.Email).Msg("run report email failed")
	}

	sms := fmt.Sprintf("Seat bookings: %d confirmed, %d failed, %d unmatched.",
		report.SubmittedCount(), report.FailedCount(), len(report.Unmatched))
	if err := s.sendSMS(sms); err != nil {
		log.Error().Err(err).Msg("run report SMS failed")
	}
}

func buildReportBody(report *entities.RunReport, contact entities.ContactInfo) string {
	var b strings.Builder

	name := contact.FirstName
	if name == "" {
		name = contact.Email
	}
	fmt.Fprintf(&b, "Hello %s,\n\nHere is the result of your booking run.\n\n", name)

	if len(report.Results) > 0 {
		b.WriteString("Reservations:\n")
		for _, result := range report.Results {
			status := "confirmed"
			if !result.Submitted {
				status = "FAILED: " + result.Reason
			}
			fmt.Fprintf(&b, "  - %s: %s\n", result.Reservation, status)
		}
		b.WriteString("\n")
	}

	if len(report.Unmatched) > 0 {
		b.WriteString("No seat could be found for:\n")
		for _, slot := range report.Unmatched {
			fmt.Fprintf(&b, "  - %s\n", slot)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Run took %s.\n", report.FinishedAt.Sub(report.StartedAt).Round(time.Second))
	return b.String()
}
