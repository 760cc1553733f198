package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"prenotazioni/internal/entities"
)

// RunRequest describes one booking run.
type RunRequest struct {
	SiteID          string
	Preferences     []string
	StartDate       time.Time
	EndDate         time.Time
	ReservationType ReservationType
	SlotDuration    time.Duration
	Contact         entities.ContactInfo
}

// BookingService orchestrates a full run: generate the desired slots,
// plan reservations against the provider, submit them best-effort and
// hand the report to the sender.
type BookingService struct {
	planner   *PlannerService
	submitter ReservationSubmitter
	sender    *SenderService
	validate  *validator.Validate
}

func NewBookingService(planner *PlannerService, submitter ReservationSubmitter, sender *SenderService) *BookingService {
	return &BookingService{
		planner:   planner,
		submitter: submitter,
		sender:    sender,
		validate:  validator.New(),
	}
}

// Run executes one booking pass. It fails only on configuration
// problems (bad contact info, bad slot parameters); provider and
// submission failures are absorbed into the report.
func (s *BookingService) Run(ctx context.Context, req RunRequest) (*entities.RunReport, error) {
	if err := s.validate.Struct(req.Contact); err != nil {
		return nil, fmt.Errorf("invalid contact info: %w", err)
	}

	report := &entities.RunReport{StartedAt: time.Now()}

	desired, err := GenerateSlots(time.Now(), req.StartDate, req.EndDate, req.ReservationType, req.SlotDuration)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("slots", len(desired)).
		Strs("preferences", req.Preferences).
		Msg("starting booking run")

	reservations, unmatched, err := s.planner.Plan(ctx, req.SiteID, req.Preferences, desired)
	if err != nil {
		return nil, err
	}
	report.Planned = reservations
	report.Unmatched = unmatched

	for _, reservation := range reservations {
		result := entities.SubmissionResult{Reservation: reservation, Submitted: true}
		log.Info().Stringer("reservation", reservation).Msg("submitting reservation")
		if err := s.submitter.Submit(ctx, reservation, req.Contact); err != nil {
			// Best effort: one rejection never blocks the rest.
			result.Submitted = false
			result.Reason = err.Error()
			log.Error().Err(err).Stringer("reservation", reservation).Msg("reservation submission failed")
		}
		report.Results = append(report.Results, result)
	}
	report.FinishedAt = time.Now()

	log.Info().
		Int("planned", len(report.Planned)).
		Int("submitted", report.SubmittedCount()).
		Int("failed", report.FailedCount()).
		Int("unmatched", len(report.Unmatched)).
		Msg("booking run finished")

	if s.sender != nil {
		s.sender.SendRunReport(report, req.Contact)
	}
	return report, nil
}
