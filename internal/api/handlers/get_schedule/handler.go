package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/api/handlers"
	"github.com/golab368/REPL-backend-tenis/internal/domain"
	"github.com/golab368/REPL-backend-tenis/internal/service/reservations"
)

const (
	msgInvalidFrom  = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo    = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidRange = "конец диапазона раньше начала"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	schedule, err := h.service.GetSchedule(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDateRange):
			h.logger.Warn("GET /schedule - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)

		default:
			h.logger.Error("GET /schedule - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}
