package api

// Auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	Token string `json:"token"`
}

// Booking runs
type TriggerRunRequest struct {
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	ReservationType   string   `json:"reservation_type"`
	SlotDurationHours float64  `json:"slot_duration_hours"`
	Preferences       []string `json:"preferences,omitempty"`
}

type ReservationView struct {
	ResourceID   string `json:"resource_id"`
	ResourceType string `json:"resource_type"`
	ResourceName string `json:"resource_name"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Submitted    bool   `json:"submitted"`
	Reason       string `json:"reason,omitempty"`
}

type UnmatchedSlotView struct {
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration_hours"`
}

type RunReportResponse struct {
	StartedAt    string              `json:"started_at"`
	FinishedAt   string              `json:"finished_at"`
	Submitted    int                 `json:"submitted"`
	Failed       int                 `json:"failed"`
	Reservations []ReservationView   `json:"reservations"`
	Unmatched    []UnmatchedSlotView `json:"unmatched"`
}
