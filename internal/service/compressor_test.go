package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prenotazioni/internal/entities"
)

func at(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func available(hours ...time.Time) []entities.TimeState {
	states := make([]entities.TimeState, 0, len(hours))
	for _, h := range hours {
		states = append(states, entities.TimeState{Hour: h, State: entities.SlotAvailable})
	}
	return states
}

func TestCompressAvailabilitiesSplitsOnGap(t *testing.T) {
	raw := []entities.ResourceAvailability{
		{
			ResourceID:   "seat-1",
			ResourceName: "Seat 1",
			Hours:        available(at(9, 0), at(9, 30), at(10, 0), at(11, 0)),
		},
	}

	compressed := CompressAvailabilities(raw)

	require.Len(t, compressed, 1)
	intervals := compressed[0].Intervals
	require.Len(t, intervals, 2)

	assert.Equal(t, at(9, 0), intervals[0].Start)
	assert.Equal(t, at(10, 0), intervals[0].End)
	assert.Equal(t, time.Hour, intervals[0].Length())

	assert.Equal(t, at(11, 0), intervals[1].Start)
	assert.Equal(t, at(11, 0), intervals[1].End)
	assert.Equal(t, time.Duration(0), intervals[1].Length())
}

func TestCompressAvailabilitiesFullRunIsOneInterval(t *testing.T) {
	raw := []entities.ResourceAvailability{
		{
			ResourceID: "seat-1",
			Hours:      available(at(9, 0), at(9, 30), at(10, 0), at(10, 30), at(11, 0)),
		},
	}

	compressed := CompressAvailabilities(raw)

	require.Len(t, compressed, 1)
	require.Len(t, compressed[0].Intervals, 1)
	assert.Equal(t, 2*time.Hour, compressed[0].Intervals[0].Length())
}

func TestCompressAvailabilitiesSortsUnorderedInput(t *testing.T) {
	raw := []entities.ResourceAvailability{
		{
			ResourceID: "seat-1",
			Hours:      available(at(10, 0), at(9, 0), at(9, 30)),
		},
	}

	compressed := CompressAvailabilities(raw)

	require.Len(t, compressed[0].Intervals, 1)
	assert.Equal(t, at(9, 0), compressed[0].Intervals[0].Start)
	assert.Equal(t, at(10, 0), compressed[0].Intervals[0].End)
}

func TestCompressAvailabilitiesIgnoresOtherStates(t *testing.T) {
	raw := []entities.ResourceAvailability{
		{
			ResourceID: "seat-1",
			Hours: []entities.TimeState{
				{Hour: at(9, 0), State: entities.SlotAvailable},
				{Hour: at(9, 30), State: entities.SlotUnavailable},
				{Hour: at(10, 0), State: entities.SlotAvailable},
				{Hour: at(10, 30), State: entities.SlotClosed},
			},
		},
	}

	compressed := CompressAvailabilities(raw)

	require.Len(t, compressed[0].Intervals, 2)
	assert.Equal(t, at(9, 0), compressed[0].Intervals[0].Start)
	assert.Equal(t, at(10, 0), compressed[0].Intervals[1].Start)
}

func TestCompressAvailabilitiesEmptyResource(t *testing.T) {
	raw := []entities.ResourceAvailability{
		{ResourceID: "seat-1", Hours: nil},
	}

	compressed := CompressAvailabilities(raw)

	require.Len(t, compressed, 1)
	assert.Empty(t, compressed[0].Intervals)
}

func TestCompressAvailabilitiesPreservesResourceOrder(t *testing.T) {
	raw := []entities.ResourceAvailability{
		{ResourceID: "seat-2", Hours: available(at(9, 0))},
		{ResourceID: "seat-1", Hours: available(at(9, 0))},
	}

	compressed := CompressAvailabilities(raw)

	require.Len(t, compressed, 2)
	assert.Equal(t, "seat-2", compressed[0].ResourceID)
	assert.Equal(t, "seat-1", compressed[1].ResourceID)
}

func TestCompressAvailabilitiesIsDeterministic(t *testing.T) {
	raw := []entities.ResourceAvailability{
		{ResourceID: "seat-1", Hours: available(at(10, 0), at(9, 0), at(14, 0), at(14, 30))},
		{ResourceID: "seat-2", Hours: available(at(9, 0), at(9, 30))},
	}

	first := CompressAvailabilities(raw)
	second := CompressAvailabilities(raw)

	assert.Equal(t, first, second)
}
