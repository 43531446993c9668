package get_nearest_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/api/handlers"
	"github.com/golab368/REPL-backend-tenis/internal/domain"
	findNearestSlot "github.com/golab368/REPL-backend-tenis/internal/usecase/find_nearest_slot"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

const (
	msgInvalidDate     = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidFrom     = "некорректный параметр from, ожидается HH:MM"
	msgInvalidDuration = "некорректный параметр durationMinutes"
	msgNoSlotAvailable = "свободных слотов до конца дня нет"
	msgInvalidInput    = "некорректные параметры запроса"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

type Handler struct {
	useCase FindNearestSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNearestSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slot?date=YYYY-MM-DD&from=HH:MM&durationMinutes=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slot - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	from, err := types.NewTimeStringFromString(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /available-slot - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /available-slot - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	slot, err := h.useCase.Execute(r.Context(), &findNearestSlot.Request{
		Date:            date,
		From:            from,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, findNearestSlot.ErrNoSlotAvailable):
			h.logger.Info("GET /available-slot - No slot: date=%s, from=%s, duration=%d",
				query.Get("date"), from, duration)
			handlers.RespondNotFound(w, msgNoSlotAvailable)

		case errors.Is(err, findNearestSlot.ErrInvalidInput):
			h.logger.Warn("GET /available-slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slot - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlotResponse{
		Date:            slot.Date.Format(domain.DateFormat),
		StartTime:       slot.StartTime.String(),
		EndTime:         slot.EndTime.String(),
		DurationMinutes: slot.DurationMinutes(),
	})
}
