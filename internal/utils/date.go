package utils

import "time"

// Midnight returns t's calendar day at midnight in t's location.
// Truncating to a 24h multiple would give UTC midnight, the previous
// day in zones ahead of UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
