package models

import (
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
)

// ReservationResponse бронь в ответе сервиса
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// ReservationListResponse нумерованный список броней одного имени
// Порядковые номера начинаются с 1 и соответствуют сортировке
// по (date, start_time)
type ReservationListResponse struct {
	Name         string                `json:"name"`
	Reservations []ReservationResponse `json:"reservations"`
}

// ScheduleDay брони одного дня расписания
type ScheduleDay struct {
	Date         string                `json:"date"`    // YYYY-MM-DD
	Weekday      string                `json:"weekday"` // Monday, Tuesday, ...
	Reservations []ReservationResponse `json:"reservations"`
}

// ScheduleResponse расписание корта за диапазон дат
type ScheduleResponse struct {
	DateStart string        `json:"dateStart"`
	DateEnd   string        `json:"dateEnd"`
	Days      []ScheduleDay `json:"days"`
}

// FromDomainReservation конвертирует domain бронь в ответ сервиса
func FromDomainReservation(res *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        res.ID,
		Name:      res.Name,
		Date:      res.Date.Format(domain.DateFormat),
		StartTime: res.StartTime.String(),
		EndTime:   res.EndTime.String(),
	}
}

// FromDomainReservationList конвертирует список domain броней
func FromDomainReservationList(name string, reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, FromDomainReservation(res))
	}
	return &ReservationListResponse{Name: name, Reservations: out}
}

// GroupByDay группирует брони по дням, сохраняя порядок (date, start_time)
func GroupByDay(dateStart, dateEnd time.Time, reservations []*domain.Reservation) *ScheduleResponse {
	days := make([]ScheduleDay, 0)

	var current *ScheduleDay
	for _, res := range reservations {
		date := res.Date.Format(domain.DateFormat)
		if current == nil || current.Date != date {
			days = append(days, ScheduleDay{
				Date:         date,
				Weekday:      res.Date.Weekday().String(),
				Reservations: make([]ReservationResponse, 0, 1),
			})
			current = &days[len(days)-1]
		}
		current.Reservations = append(current.Reservations, FromDomainReservation(res))
	}

	return &ScheduleResponse{
		DateStart: dateStart.Format(domain.DateFormat),
		DateEnd:   dateEnd.Format(domain.DateFormat),
		Days:      days,
	}
}
