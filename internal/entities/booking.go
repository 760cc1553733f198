package entities

import (
	"fmt"
	"time"
)

// SlotState is the availability state the provider reports for one
// half-hour block.
type SlotState string

const (
	SlotAvailable   SlotState = "available"
	SlotUnavailable SlotState = "unavailable"
	SlotNotBookable SlotState = "not_bookable"
	SlotClosed      SlotState = "closed"
)

// SlotGrid is the provider's time grid. Every reported hour and every
// requested start time sits on a 30-minute boundary.
const SlotGrid = 30 * time.Minute

// TimeState is one provider-reported half-hour block for a resource.
// The Hour carries only a time of day (clock time parsed on the zero
// date), never a calendar date.
type TimeState struct {
	Hour  time.Time
	State SlotState
}

// ResourceAvailability is the raw availability of a single concrete
// resource (one seat) for one day, as returned by the provider.
type ResourceAvailability struct {
	ResourceID   string
	ResourceName string
	Hours        []TimeState
}

// ResourceType is a bookable resource category of a site, e.g. a
// reading room. Preferences are expressed against its name.
type ResourceType struct {
	TypeID int
	Name   string
}

// Interval is a maximal contiguous run of available half-hour blocks
// for one resource. Start and End are the boundary block times; Length
// is the elapsed time between them, so a single block yields a
// zero-length interval.
type Interval struct {
	ResourceID   string
	ResourceName string
	Start        time.Time
	End          time.Time
}

// Length returns the elapsed time between the interval boundaries.
func (i Interval) Length() time.Duration {
	return i.End.Sub(i.Start)
}

// ResourceIntervals groups the compressed intervals of one resource.
// The planner depends on slice order, not map order, so compressed
// results are carried as an ordered slice of these groups.
type ResourceIntervals struct {
	ResourceID   string
	ResourceName string
	Intervals    []Interval
}

// DesiredSlot is a requested booking: a date, a clock start time and a
// duration. Satisfied slots are removed from the pending set by the
// planner; the rest are reported as unmatched.
type DesiredSlot struct {
	Date     time.Time
	Start    time.Time
	Duration time.Duration
}

// NewDesiredSlot validates the grid constraints before constructing a
// slot: non-negative duration and a start time on the 30-minute grid.
func NewDesiredSlot(date, start time.Time, duration time.Duration) (DesiredSlot, error) {
	if duration < 0 {
		return DesiredSlot{}, fmt.Errorf("slot duration must be non-negative, got %s", duration)
	}
	if start.Minute()%30 != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return DesiredSlot{}, fmt.Errorf("slot start %s is not on the 30-minute grid", start.Format("15:04:05"))
	}
	return DesiredSlot{Date: date, Start: start, Duration: duration}, nil
}

func (s DesiredSlot) String() string {
	return fmt.Sprintf("%s %s (%s)", s.Date.Format("2006-01-02"), s.Start.Format("15:04"), s.Duration)
}

// Reservation is a finalized booking decision, ready for submission.
// It is never mutated after the planner creates it.
type Reservation struct {
	ResourceID   string
	ResourceType string
	ResourceName string
	Date         time.Time
	Start        time.Time
	Duration     time.Duration
}

// End returns the clock end time of the reservation.
func (r Reservation) End() time.Time {
	return r.Start.Add(r.Duration)
}

func (r Reservation) String() string {
	return fmt.Sprintf("%s seat %q (%s) on %s %s-%s",
		r.ResourceType, r.ResourceName, r.ResourceID,
		r.Date.Format("2006-01-02"), r.Start.Format("15:04"), r.End().Format("15:04"))
}
