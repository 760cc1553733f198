package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"prenotazioni/internal/entities"
	"prenotazioni/internal/service"
	"prenotazioni/internal/utils"
)

const dateLayout = "2006-01-02"

// Config is everything a booking run needs from the environment.
type Config struct {
	SiteID          string
	Preferences     []string
	Contact         entities.ContactInfo
	StartDate       time.Time
	EndDate         time.Time
	ReservationType service.ReservationType
	SlotDuration    time.Duration
	BaseURL         string
	CronSchedule    string
	Port            string
}

// Load reads and validates the run configuration from the environment.
// Defaults: today through the provider horizon, full-day bookings of
// four hours.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:      os.Getenv("AFFLUENCES_BASE_URL"),
		CronSchedule: getEnvOrDefault("CRON_SCHEDULE", "0 7 * * *"),
		Port:         getEnvOrDefault("PORT", "8080"),
	}

	cfg.SiteID = os.Getenv("AFFLUENCES_SITE_ID")
	if cfg.SiteID == "" {
		return nil, fmt.Errorf("AFFLUENCES_SITE_ID not set")
	}
	if _, err := uuid.Parse(cfg.SiteID); err != nil {
		return nil, fmt.Errorf("AFFLUENCES_SITE_ID is not a valid UUID: %w", err)
	}

	for _, name := range strings.Split(os.Getenv("RESOURCE_PREFERENCES"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Preferences = append(cfg.Preferences, name)
		}
	}
	if len(cfg.Preferences) == 0 {
		return nil, fmt.Errorf("RESOURCE_PREFERENCES not set")
	}

	cfg.Contact = entities.ContactInfo{
		Email:     os.Getenv("CONTACT_EMAIL"),
		FirstName: os.Getenv("CONTACT_FIRST_NAME"),
		LastName:  os.Getenv("CONTACT_LAST_NAME"),
		Phone:     os.Getenv("CONTACT_PHONE"),
	}
	if cfg.Contact.Email == "" {
		return nil, fmt.Errorf("CONTACT_EMAIL not set")
	}

	cfg.StartDate = utils.Midnight(time.Now())
	cfg.EndDate = cfg.StartDate.AddDate(0, 0, 7)
	var err error
	if v := os.Getenv("START_DATE"); v != "" {
		if cfg.StartDate, err = time.Parse(dateLayout, v); err != nil {
			return nil, fmt.Errorf("invalid START_DATE: %w", err)
		}
	}
	if v := os.Getenv("END_DATE"); v != "" {
		if cfg.EndDate, err = time.Parse(dateLayout, v); err != nil {
			return nil, fmt.Errorf("invalid END_DATE: %w", err)
		}
	}

	if cfg.ReservationType, err = service.ParseReservationType(os.Getenv("RESERVATION_TYPE")); err != nil {
		return nil, err
	}

	hours := 4.0
	if v := os.Getenv("SLOT_DURATION_HOURS"); v != "" {
		if hours, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid SLOT_DURATION_HOURS: %w", err)
		}
	}
	cfg.SlotDuration = time.Duration(hours * float64(time.Hour))

	return cfg, nil
}

// RunRequest converts the configuration into the booking service's
// request shape.
func (c *Config) RunRequest() service.RunRequest {
	return service.RunRequest{
		SiteID:          c.SiteID,
		Preferences:     c.Preferences,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		ReservationType: c.ReservationType,
		SlotDuration:    c.SlotDuration,
		Contact:         c.Contact,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
