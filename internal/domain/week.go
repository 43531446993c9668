package domain

import "time"

// QuotaWindow returns the Monday-Saturday span of the week containing date.
// The weekly reservation limit is counted over this window; Sunday belongs
// to neither the preceding nor the following window
func QuotaWindow(date time.Time) (start, end time.Time) {
	day := DateOnly(date)

	// time.Weekday нумерует с воскресенья, приводим к понедельнику
	offset := (int(day.Weekday()) + 6) % 7
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 5)
	return start, end
}
