package get_user_reservations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/golab368/REPL-backend-tenis/internal/api/handlers"
	"github.com/golab368/REPL-backend-tenis/internal/service/reservations"
)

const (
	msgNameRequired   = "имя обязательно"
	msgNoReservations = "у этого имени нет броней"
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

// Handle GET /api/v1/users/{name}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)["name"])
	if name == "" {
		h.logger.Warn("GET /users/{name}/reservations - Empty name")
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	list, err := h.service.ListByName(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrNoReservations):
			h.logger.Info("GET /users/{name}/reservations - No reservations: name=%q", name)
			handlers.RespondNotFound(w, msgNoReservations)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{name}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)

		default:
			h.logger.Error("GET /users/{name}/reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
