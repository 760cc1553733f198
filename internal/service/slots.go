package service

import (
	"fmt"
	"time"

	"prenotazioni/internal/entities"
	"prenotazioni/internal/utils"
)

// ReservationType selects which part of the day to book.
type ReservationType int

const (
	FullDay ReservationType = iota + 1
	OnlyMorning
	OnlyAfternoon
)

// ParseReservationType maps the config spelling to a ReservationType.
func ParseReservationType(s string) (ReservationType, error) {
	switch s {
	case "", "full_day":
		return FullDay, nil
	case "only_morning":
		return OnlyMorning, nil
	case "only_afternoon":
		return OnlyAfternoon, nil
	}
	return 0, fmt.Errorf("unknown reservation type %q", s)
}

func (t ReservationType) String() string {
	switch t {
	case FullDay:
		return "full_day"
	case OnlyMorning:
		return "only_morning"
	case OnlyAfternoon:
		return "only_afternoon"
	}
	return fmt.Sprintf("ReservationType(%d)", int(t))
}

// Morning and afternoon sessions start at the site's fixed times.
var (
	morningStart   = clockTime(9, 0)
	afternoonStart = clockTime(14, 0)
)

// bookingHorizon is how far ahead the provider accepts reservations.
// Slots past it would be rejected anyway, so the generator never emits
// them.
const bookingHorizon = 7 * 24 * time.Hour

// GenerateSlots emits the desired slots for every calendar day in
// [startDate, endDate], clamping endDate to the provider's booking
// horizon relative to now. Days are emitted chronologically, morning
// before afternoon. The caller supplies now so the output is
// deterministic.
func GenerateSlots(now, startDate, endDate time.Time, reservationType ReservationType, duration time.Duration) ([]entities.DesiredSlot, error) {
	horizon := utils.Midnight(now.Add(bookingHorizon))
	if endDate.After(horizon) {
		endDate = horizon
	}

	var slots []entities.DesiredSlot
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		if reservationType == FullDay || reservationType == OnlyMorning {
			slot, err := entities.NewDesiredSlot(day, morningStart, duration)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}
		if reservationType == FullDay || reservationType == OnlyAfternoon {
			slot, err := entities.NewDesiredSlot(day, afternoonStart, duration)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// clockTime builds a time of day on the zero date, the anchor used for
// all clock arithmetic in this package.
func clockTime(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}
