package service

import (
	"time"

	"prenotazioni/internal/entities"
)

// slotTolerance is the half-hour slack applied on both matcher
// constraints. The thresholds are deliberate: an interval hosts a
// desired duration only with a spare 30-minute block, and a start time
// may drift at most 30 minutes from the requested one.
const slotTolerance = 30 * time.Minute

// FindSlot returns the first interval able to host a booking of the
// desired duration near the desired start time. Resources are scanned
// in slice order and intervals in chronological order; the first
// qualifying interval wins, so the caller's ordering is the tie-break.
// Returns false when nothing qualifies.
func FindSlot(resources []entities.ResourceIntervals, duration time.Duration, start time.Time) (entities.Interval, bool) {
	for _, resource := range resources {
		for _, interval := range resource.Intervals {
			if interval.Length()-slotTolerance < duration {
				continue
			}
			if absDuration(interval.Start.Sub(start)) > slotTolerance {
				continue
			}
			return interval, true
		}
	}
	return entities.Interval{}, false
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
