package domain

import (
	"time"

	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// Slot represents a half-open time interval [StartTime, EndTime) on a date
type Slot struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// NewSlot builds a slot of the given duration starting at start.
// Fails with types.ErrTimeOutOfDay when the slot would cross midnight
func NewSlot(date time.Time, start types.TimeString, durationMinutes int) (Slot, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Date: DateOnly(date), StartTime: start, EndTime: end}, nil
}

// DurationMinutes returns the slot length in minutes
func (s Slot) DurationMinutes() int {
	minutes, err := s.StartTime.MinutesUntil(s.EndTime)
	if err != nil {
		return 0
	}
	return minutes
}

// FitsInDay reports whether the slot ends no later than DayEnd (23:59)
func (s Slot) FitsInDay() bool {
	return !s.EndTime.IsAfter(DayEnd)
}
