package affluences

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"prenotazioni/internal/entities"
	apperrors "prenotazioni/internal/errors"
)

const (
	defaultBaseURL = "https://reservation.affluences.com"

	// The service throttles and occasionally bans hasty clients.
	requestTimeout     = 5 * time.Second
	submitCooldown     = 5 * time.Second
	clockLayout        = "15:04"
	clockSecondsLayout = "15:04:05"
	dateLayout         = "2006-01-02"
)

// Client talks to the Affluences reservation API. It implements both
// the availability provider and the reservation submitter sides. A
// rate limiter imposes the fixed cooldown between submissions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL exists so tests can point the client at a local
// server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Every(submitCooldown), 1),
	}
}

type siteInfoResponse struct {
	Types []struct {
		LocalizedDescription string `json:"localized_description"`
		ResourceType         int    `json:"resource_type"`
	} `json:"types"`
}

// GetResourceTypes fetches the site's bookable resource categories.
func (c *Client) GetResourceTypes(ctx context.Context, siteID string) ([]entities.ResourceType, error) {
	endpoint := fmt.Sprintf("%s/api/sites/%s/infos", c.baseURL, url.PathEscape(siteID))

	var info siteInfoResponse
	if err := c.getJSON(ctx, endpoint, &info); err != nil {
		return nil, err
	}

	types := make([]entities.ResourceType, 0, len(info.Types))
	for _, t := range info.Types {
		types = append(types, entities.ResourceType{
			TypeID: t.ResourceType,
			Name:   t.LocalizedDescription,
		})
	}
	return types, nil
}

type availableResourceResponse struct {
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	Hours        []struct {
		Hour  string `json:"hour"`
		State string `json:"state"`
	} `json:"hours"`
}

// GetAvailableSlots fetches the per-resource half-hour availability of
// one resource type on one date.
func (c *Client) GetAvailableSlots(ctx context.Context, siteID string, typeID int, date time.Time) ([]entities.ResourceAvailability, error) {
	endpoint := fmt.Sprintf("%s/api/resources/%s/available?date=%s&type=%d&capacity=1",
		c.baseURL, url.PathEscape(siteID), date.Format(dateLayout), typeID)

	var raw []availableResourceResponse
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	resources := make([]entities.ResourceAvailability, 0, len(raw))
	for _, r := range raw {
		resource := entities.ResourceAvailability{
			ResourceID:   r.ResourceID,
			ResourceName: r.ResourceName,
			Hours:        make([]entities.TimeState, 0, len(r.Hours)),
		}
		for _, h := range r.Hours {
			hour, err := time.Parse(clockLayout, h.Hour)
			if err != nil {
				return nil, apperrors.NewProviderError(0, fmt.Sprintf("malformed hour %q for resource %s", h.Hour, r.ResourceID))
			}
			resource.Hours = append(resource.Hours, entities.TimeState{
				Hour:  hour,
				State: entities.SlotState(h.State),
			})
		}
		resources = append(resources, resource)
	}
	return resources, nil
}

type reservePayload struct {
	AuthType      *string `json:"auth_type"`
	Date          string  `json:"date"`
	Email         string  `json:"email"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Note          *string `json:"note"`
	UserFirstname string  `json:"user_firstname,omitempty"`
	UserLastname  string  `json:"user_lastname,omitempty"`
	UserPhone     string  `json:"user_phone,omitempty"`
	PersonCount   int     `json:"person_count"`
}

type reserveErrorResponse struct {
	Message string `json:"message"`
}

// Submit books one reservation, waiting out the submission cooldown
// first. A non-2xx response becomes a ProviderError carrying the
// service's returned reason.
func (c *Client) Submit(ctx context.Context, reservation entities.Reservation, contact entities.ContactInfo) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	payload := reservePayload{
		Date:          reservation.Date.Format(dateLayout),
		Email:         contact.Email,
		StartTime:     reservation.Start.Format(clockSecondsLayout),
		EndTime:       reservation.End().Format(clockSecondsLayout),
		UserFirstname: contact.FirstName,
		UserLastname:  contact.LastName,
		UserPhone:     contact.Phone,
		PersonCount:   1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding reserve payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/reserve/%s", c.baseURL, url.PathEscape(reservation.ResourceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building reserve request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewProviderError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := readReason(resp.Body)
		return apperrors.NewProviderError(resp.StatusCode, reason)
	}

	log.Debug().Stringer("reservation", reservation).Msg("reservation accepted")
	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	setBrowserHeaders(req)

	log.Debug().Str("url", endpoint).Msg("calling provider")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewProviderError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewProviderError(resp.StatusCode, readReason(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewProviderError(0, fmt.Sprintf("decoding response: %v", err))
	}
	return nil
}

// readReason extracts the provider's error message, falling back to
// the raw body when it is not the usual JSON shape.
func readReason(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}
	var parsed reserveErrorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(raw)
}
