package domain

import (
	"time"

	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// Reservation represents a booked slot on the court
type Reservation struct {
	ID        int64
	Name      string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
}

// DurationMinutes returns the reservation length in minutes,
// derived from start and end times
func (r *Reservation) DurationMinutes() int {
	minutes, err := r.StartTime.MinutesUntil(r.EndTime)
	if err != nil {
		return 0
	}
	return minutes
}

// Overlaps reports whether the reservation intersects the half-open
// interval [start, end) on the same date
func (r *Reservation) Overlaps(start, end types.TimeString) bool {
	return Overlap(r.StartTime, r.EndTime, start, end)
}

// Overlap is the single half-open interval test: [s1,e1) and [s2,e2)
// intersect iff s1 < e2 and s2 < e1. Boundary touching is not a conflict
func Overlap(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates a timestamp to midnight of its calendar day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
