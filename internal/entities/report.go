package entities

import "time"

// SubmissionResult records the outcome of submitting one reservation.
type SubmissionResult struct {
	Reservation Reservation
	Submitted   bool
	Reason      string
}

// RunReport aggregates one booking run: what was planned, what the
// provider accepted, and which desired slots stayed unmatched. It is
// held in memory only; runs leave no state behind.
type RunReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Planned    []Reservation
	Results    []SubmissionResult
	Unmatched  []DesiredSlot
}

// SubmittedCount returns how many reservations the provider accepted.
func (r *RunReport) SubmittedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Submitted {
			n++
		}
	}
	return n
}

// FailedCount returns how many submissions the provider rejected.
func (r *RunReport) FailedCount() int {
	return len(r.Results) - r.SubmittedCount()
}
