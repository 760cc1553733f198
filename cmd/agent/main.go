package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"prenotazioni/internal/affluences"
	"prenotazioni/internal/config"
	"prenotazioni/internal/service"
)

func main() {
	godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	client := affluences.NewClient()
	if cfg.BaseURL != "" {
		client = affluences.NewClientWithBaseURL(cfg.BaseURL)
	}

	planner := service.NewPlannerService(client)
	sender := service.NewSenderService()
	booking := service.NewBookingService(planner, client, sender)

	report, err := booking.Run(context.Background(), cfg.RunRequest())
	if err != nil {
		log.Fatal().Err(err).Msg("booking run failed")
	}

	log.Info().
		Int("submitted", report.SubmittedCount()).
		Int("failed", report.FailedCount()).
		Int("unmatched", len(report.Unmatched)).
		Msg("done")
}
