package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"prenotazioni/internal/utils"
)

// JobService runs the recurring booking pass the daemon schedules via
// cron: book the whole upcoming provider horizon with the configured
// preferences.
type JobService struct {
	booking *BookingService
	base    RunRequest
}

func NewJobService(booking *BookingService, base RunRequest) *JobService {
	return &JobService{booking: booking, base: base}
}

// RunScheduledBooking books the next seven days. Errors are returned
// for the caller to log; the daemon never treats them as fatal.
func (s *JobService) RunScheduledBooking(ctx context.Context) error {
	log.Info().Msg("cron: starting scheduled booking run")

	req := s.base
	req.StartDate = utils.Midnight(time.Now())
	req.EndDate = req.StartDate.AddDate(0, 0, 7)

	report, err := s.booking.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("cron: scheduled booking run failed: %w", err)
	}

	log.Info().
		Int("submitted", report.SubmittedCount()).
		Int("unmatched", len(report.Unmatched)).
		Msg("cron: scheduled booking run finished")
	return nil
}
