package cancel_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golab368/REPL-backend-tenis/internal/api/handlers"
	"github.com/golab368/REPL-backend-tenis/internal/service/reservations"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgNameRequired     = "имя обязательно"
	msgNoReservations   = "у этого имени нет броней"
	msgInvalidSelection = "номер брони вне диапазона списка"
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

// Handle POST /api/v1/reservations/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.logger.Warn("POST /reservations/cancel - Empty name")
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	cancelled, err := h.service.CancelBySelection(r.Context(), req.Name, req.Selection)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrNoReservations):
			h.logger.Info("POST /reservations/cancel - No reservations: name=%q", req.Name)
			handlers.RespondNotFound(w, msgNoReservations)

		case errors.Is(err, reservations.ErrInvalidSelection):
			h.logger.Warn("POST /reservations/cancel - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)

		default:
			h.logger.Error("POST /reservations/cancel - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CancelResponse{Cancelled: *cancelled})
}
