package domain

import "github.com/golab368/REPL-backend-tenis/pkg/types"

// Booking rules for the court
const (
	// MinLeadTimeMinutes минимальный интервал между "сейчас" и началом брони.
	// Граница нестрогая: заявка ровно за 60 минут отклоняется
	MinLeadTimeMinutes = 60

	// MaxReservationsPerWeek лимит броней на одно имя в окне Пн-Сб
	MaxReservationsPerWeek = 2

	// SlotBufferMinutes обязательная пауза после конца существующей брони,
	// прежде чем может начаться новая (при поиске ближайшего слота)
	SlotBufferMinutes = 1
)

// AllowedDurations допустимые длительности брони в минутах
var AllowedDurations = []int{30, 60, 90}

// IsAllowedDuration проверяет, что длительность входит в список допустимых
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DayEnd последняя минута суток: слот обязан закончиться не позже неё
var DayEnd = types.TimeString("23:59")
