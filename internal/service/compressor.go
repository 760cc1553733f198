package service

import (
	"sort"

	"prenotazioni/internal/entities"
)

// CompressAvailabilities merges each resource's raw half-hour
// availability states into maximal contiguous intervals. Only blocks
// in the available state contribute; a block extends the current run
// iff it sits exactly 30 minutes after the previous one. Resources
// keep their provider order, hence the ordered slice instead of a map.
//
// An interval's boundaries are the first and last block times of the
// run, so a run of a single block compresses to a zero-length
// interval. A resource with no available blocks yields a group with an
// empty interval list.
func CompressAvailabilities(resources []entities.ResourceAvailability) []entities.ResourceIntervals {
	compressed := make([]entities.ResourceIntervals, 0, len(resources))

	for _, resource := range resources {
		hours := make([]entities.TimeState, 0, len(resource.Hours))
		for _, h := range resource.Hours {
			if h.State == entities.SlotAvailable {
				hours = append(hours, h)
			}
		}
		// The provider sends hours chronologically, but its contract
		// does not promise it.
		sort.Slice(hours, func(i, j int) bool {
			return hours[i].Hour.Before(hours[j].Hour)
		})

		group := entities.ResourceIntervals{
			ResourceID:   resource.ResourceID,
			ResourceName: resource.ResourceName,
			Intervals:    []entities.Interval{},
		}
		for _, h := range hours {
			n := len(group.Intervals)
			if n > 0 && h.Hour.Equal(group.Intervals[n-1].End.Add(entities.SlotGrid)) {
				group.Intervals[n-1].End = h.Hour
				continue
			}
			group.Intervals = append(group.Intervals, entities.Interval{
				ResourceID:   resource.ResourceID,
				ResourceName: resource.ResourceName,
				Start:        h.Hour,
				End:          h.Hour,
			})
		}
		compressed = append(compressed, group)
	}

	return compressed
}
