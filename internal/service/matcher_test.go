package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prenotazioni/internal/entities"
)

func group(resourceID string, intervals ...entities.Interval) entities.ResourceIntervals {
	for i := range intervals {
		intervals[i].ResourceID = resourceID
	}
	return entities.ResourceIntervals{ResourceID: resourceID, Intervals: intervals}
}

func span(start, end time.Time) entities.Interval {
	return entities.Interval{Start: start, End: end}
}

func TestFindSlotAcceptsIntervalWithHalfHourSpare(t *testing.T) {
	// 09:00-13:30 is 4.5h, enough to host 4h with the spare block.
	groups := []entities.ResourceIntervals{
		group("seat-1", span(at(9, 0), at(13, 30))),
	}

	interval, ok := FindSlot(groups, 4*time.Hour, at(9, 0))

	require.True(t, ok)
	assert.Equal(t, "seat-1", interval.ResourceID)
}

func TestFindSlotRejectsIntervalWithoutSpare(t *testing.T) {
	// Exactly 4h is not enough for a 4h request.
	groups := []entities.ResourceIntervals{
		group("seat-1", span(at(9, 0), at(13, 0))),
	}

	_, ok := FindSlot(groups, 4*time.Hour, at(9, 0))

	assert.False(t, ok)
}

func TestFindSlotStartTolerance(t *testing.T) {
	groups := []entities.ResourceIntervals{
		group("seat-1", span(at(9, 30), at(14, 0))),
	}

	// 30 minutes away is still acceptable.
	_, ok := FindSlot(groups, 4*time.Hour, at(9, 0))
	assert.True(t, ok)

	// 31 minutes is not.
	groups[0].Intervals[0].Start = at(9, 31)
	_, ok = FindSlot(groups, 4*time.Hour, at(9, 0))
	assert.False(t, ok)
}

func TestFindSlotRejectsStartTooEarly(t *testing.T) {
	groups := []entities.ResourceIntervals{
		group("seat-1", span(at(8, 0), at(14, 0))),
	}

	_, ok := FindSlot(groups, 4*time.Hour, at(9, 0))

	assert.False(t, ok)
}

func TestFindSlotIsFirstFit(t *testing.T) {
	groups := []entities.ResourceIntervals{
		group("seat-1",
			span(at(9, 0), at(9, 30)), // too short
			span(at(9, 0), at(14, 0)),
		),
		group("seat-2", span(at(9, 0), at(15, 0))), // also fits, but later in order
	}

	interval, ok := FindSlot(groups, 4*time.Hour, at(9, 0))

	require.True(t, ok)
	assert.Equal(t, "seat-1", interval.ResourceID)
	assert.Equal(t, at(14, 0), interval.End)
}

func TestFindSlotNoMatch(t *testing.T) {
	groups := []entities.ResourceIntervals{
		group("seat-1"),
		group("seat-2", span(at(16, 0), at(16, 30))),
	}

	_, ok := FindSlot(groups, 2*time.Hour, at(9, 0))

	assert.False(t, ok)
}
