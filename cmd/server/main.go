package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"prenotazioni/internal/affluences"
	"prenotazioni/internal/api"
	"prenotazioni/internal/auth"
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
	jobSvc := service.NewJobService(booking, cfg.RunRequest())

	authHandler := api.NewAuthHandler(service.NewAuthService())
	bookingHandler := api.NewBookingHandler(booking, cfg.RunRequest())

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")

	// Protected endpoints
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(auth.Middleware)
	protected.HandleFunc("/runs", bookingHandler.TriggerRun).Methods("POST")
	protected.HandleFunc("/runs/latest", bookingHandler.GetLatestRun).Methods("GET")

	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSchedule, func() {
		if err := jobSvc.RunScheduledBooking(context.Background()); err != nil {
			log.Error().Err(err).Msg("scheduled booking run failed")
		}
	}); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.CronSchedule).Msg("invalid cron schedule")
	}
	c.Start()
	defer c.Stop()

	log.Info().Str("port", cfg.Port).Str("schedule", cfg.CronSchedule).Msg("server running")
	if err := http.ListenAndServe(":"+cfg.Port, handlers.CombinedLoggingHandler(os.Stdout, r)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
