package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prenotazioni/internal/entities"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSlotsFullDay(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(now, day(2026, time.March, 2), day(2026, time.March, 3), FullDay, 4*time.Hour)

	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(14, 0), slots[1].Start)
	assert.Equal(t, day(2026, time.March, 2), slots[0].Date)
	assert.Equal(t, day(2026, time.March, 2), slots[1].Date)
	assert.Equal(t, day(2026, time.March, 3), slots[2].Date)
	for _, slot := range slots {
		assert.Equal(t, 4*time.Hour, slot.Duration)
	}
}

func TestGenerateSlotsMorningOnly(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(now, day(2026, time.March, 2), day(2026, time.March, 4), OnlyMorning, 3*time.Hour)

	require.NoError(t, err)
	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.Equal(t, at(9, 0), slot.Start)
	}
}

func TestGenerateSlotsAfternoonOnly(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(now, day(2026, time.March, 2), day(2026, time.March, 2), OnlyAfternoon, 3*time.Hour)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, at(14, 0), slots[0].Start)
}

func TestGenerateSlotsClampsToBookingHorizon(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	horizon := day(2026, time.March, 9)

	slots, err := GenerateSlots(now, day(2026, time.March, 2), day(2026, time.April, 1), OnlyMorning, 4*time.Hour)

	require.NoError(t, err)
	// March 2 through March 9 inclusive.
	require.Len(t, slots, 8)
	assert.Equal(t, horizon, slots[len(slots)-1].Date)
}

func TestGenerateSlotsHorizonFollowsLocalCalendarDay(t *testing.T) {
	rome := time.FixedZone("CEST", 2*3600)
	// 01:00 local is still the previous day in UTC; the horizon must
	// count from the local calendar day regardless.
	now := time.Date(2026, time.March, 2, 1, 0, 0, 0, rome)
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, rome)

	slots, err := GenerateSlots(now, start, start.AddDate(0, 0, 30), OnlyMorning, 4*time.Hour)

	require.NoError(t, err)
	// March 2 through March 9 inclusive.
	require.Len(t, slots, 8)
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, rome), slots[len(slots)-1].Date)
}

func TestGenerateSlotsEmptyRange(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(now, day(2026, time.March, 5), day(2026, time.March, 4), FullDay, 4*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsRejectsNegativeDuration(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	_, err := GenerateSlots(now, day(2026, time.March, 2), day(2026, time.March, 2), FullDay, -time.Hour)

	assert.Error(t, err)
}

func TestParseReservationType(t *testing.T) {
	cases := map[string]ReservationType{
		"":               FullDay,
		"full_day":       FullDay,
		"only_morning":   OnlyMorning,
		"only_afternoon": OnlyAfternoon,
	}
	for input, want := range cases {
		got, err := ParseReservationType(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseReservationType("weekends")
	assert.Error(t, err)
}

func TestNewDesiredSlotValidation(t *testing.T) {
	_, err := entities.NewDesiredSlot(day(2026, time.March, 2), at(9, 15), time.Hour)
	assert.Error(t, err, "off-grid start must be rejected")

	_, err = entities.NewDesiredSlot(day(2026, time.March, 2), at(9, 30), time.Hour)
	assert.NoError(t, err)
}
