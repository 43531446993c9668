package create_reservation

import (
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	createReservation "github.com/golab368/REPL-backend-tenis/internal/usecase/create_reservation"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name            string `json:"name"`
	Date            string `json:"date"`      // "2025-06-02"
	StartTime       string `json:"startTime"` // "15:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	CreatedAt       string `json:"createdAt"`
}

// SuggestedSlotResponse подсказка альтернативного слота при конфликте
type SuggestedSlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ConflictResponse тело ответа 409 Conflict
type ConflictResponse struct {
	Error         string                 `json:"error"`
	SuggestedSlot *SuggestedSlotResponse `json:"suggestedSlot,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Name:            r.Name,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromSuggestedSlot конвертирует подсказку слота в HTTP модель
func FromSuggestedSlot(slot *domain.Slot) *SuggestedSlotResponse {
	if slot == nil {
		return nil
	}
	return &SuggestedSlotResponse{
		Date:      slot.Date.Format(domain.DateFormat),
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
	}
}
