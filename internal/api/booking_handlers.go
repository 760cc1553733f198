package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"prenotazioni/internal/entities"
	"prenotazioni/internal/service"
	"prenotazioni/internal/utils"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes the daemon's control plane: trigger a run and
// read back the latest report. The report lives in memory only.
type BookingHandler struct {
	booking *service.BookingService
	base    service.RunRequest

	mu         sync.Mutex
	lastReport *entities.RunReport
}

func NewBookingHandler(booking *service.BookingService, base service.RunRequest) *BookingHandler {
	return &BookingHandler{booking: booking, base: base}
}

func (h *BookingHandler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	var req TriggerRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	runReq, err := h.buildRunRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.booking.Run(r.Context(), runReq)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.mu.Lock()
	h.lastReport = report
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toReportResponse(report))
}

func (h *BookingHandler) GetLatestRun(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	report := h.lastReport
	h.mu.Unlock()

	if report == nil {
		http.Error(w, "No run recorded yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toReportResponse(report))
}

func (h *BookingHandler) buildRunRequest(req TriggerRunRequest) (service.RunRequest, error) {
	runReq := h.base

	runReq.StartDate = utils.Midnight(time.Now())
	runReq.EndDate = runReq.StartDate.AddDate(0, 0, 7)

	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return service.RunRequest{}, err
		}
		runReq.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return service.RunRequest{}, err
		}
		runReq.EndDate = end
	}
	if req.ReservationType != "" {
		rt, err := service.ParseReservationType(req.ReservationType)
		if err != nil {
			return service.RunRequest{}, err
		}
		runReq.ReservationType = rt
	}
	if req.SlotDurationHours > 0 {
		runReq.SlotDuration = time.Duration(req.SlotDurationHours * float64(time.Hour))
	}
	if len(req.Preferences) > 0 {
		runReq.Preferences = req.Preferences
	}
	return runReq, nil
}

func toReportResponse(report *entities.RunReport) RunReportResponse {
	resp := RunReportResponse{
		StartedAt:    report.StartedAt.Format(time.RFC3339),
		FinishedAt:   report.FinishedAt.Format(time.RFC3339),
		Submitted:    report.SubmittedCount(),
		Failed:       report.FailedCount(),
		Reservations: []ReservationView{},
		Unmatched:    []UnmatchedSlotView{},
	}
	for _, result := range report.Results {
		r := result.Reservation
		resp.Reservations = append(resp.Reservations, ReservationView{
			ResourceID:   r.ResourceID,
			ResourceType: r.ResourceType,
			ResourceName: r.ResourceName,
			Date:         r.Date.Format(dateLayout),
			StartTime:    r.Start.Format("15:04"),
			EndTime:      r.End().Format("15:04"),
			Submitted:    result.Submitted,
			Reason:       result.Reason,
		})
	}
	for _, slot := range report.Unmatched {
		resp.Unmatched = append(resp.Unmatched, UnmatchedSlotView{
			Date:          slot.Date.Format(dateLayout),
			StartTime:     slot.Start.Format("15:04"),
			DurationHours: slot.Duration.Hours(),
		})
	}
	return resp
}
