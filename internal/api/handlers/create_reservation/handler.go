package create_reservation

import (
	"errors"
	"net/http"

	"github.com/golab368/REPL-backend-tenis/internal/api/handlers"
	createReservation "github.com/golab368/REPL-backend-tenis/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration    = "длительность должна быть 30, 60 или 90 минут"
	msgLeadTimeTooShort   = "бронь должна начинаться более чем через час"
	msgInvalidTimeSlot    = "слот должен заканчиваться в тот же день"
	msgSlotNotAvailable   = "запрошенный слот занят"
	msgNoSlotAvailable    = "запрошенный слот занят, свободных слотов до конца дня нет"
	msgQuotaExceeded      = "на этой неделе уже сделаны две брони, больше нельзя"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createReservation.SlotConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /reservations - Slot conflict: name=%q, date=%s, time=%s",
				req.Name, req.Date, req.StartTime)
			message := msgSlotNotAvailable
			if conflict.Suggested == nil {
				message = msgNoSlotAvailable
			}
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:         message,
				SuggestedSlot: FromSuggestedSlot(conflict.Suggested),
			})

		case errors.Is(err, createReservation.ErrInvalidDuration):
			h.logger.Warn("POST /reservations - Invalid duration: %d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createReservation.ErrLeadTimeTooShort):
			h.logger.Warn("POST /reservations - Lead time too short: name=%q, date=%s, time=%s",
				req.Name, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgLeadTimeTooShort)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Slot crosses midnight: time=%s, duration=%d",
				req.StartTime, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrWeeklyQuotaExceeded):
			h.logger.Warn("POST /reservations - Weekly quota exceeded: name=%q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgQuotaExceeded)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: name=%q, error=%v",
				req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, name=%q, date=%s %s-%s",
		result.ID, result.Name, req.Date, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
