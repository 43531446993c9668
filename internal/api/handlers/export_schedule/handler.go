package export_schedule

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/api/handlers"
	"github.com/golab368/REPL-backend-tenis/internal/domain"
	"github.com/golab368/REPL-backend-tenis/internal/service/reservations"
)

const (
	msgInvalidFrom   = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidFormat = "некорректный формат, поддерживаются json и csv"
	msgInvalidRange  = "конец диапазона раньше начала"
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

// Handle GET /api/v1/schedule/export?from=YYYY-MM-DD&to=YYYY-MM-DD&format=json|csv
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /schedule/export - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /schedule/export - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	formatParam := query.Get("format")
	if formatParam == "" {
		formatParam = string(reservations.FormatJSON)
	}
	format, err := reservations.ParseExportFormat(formatParam)
	if err != nil {
		h.logger.Warn("GET /schedule/export - Invalid format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	// Сначала пишем в буфер: при ошибке выгрузки клиент получает
	// JSON ошибку, а не обрезанный файл
	var buf bytes.Buffer
	if err := h.service.ExportSchedule(r.Context(), from, to, format, &buf); err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDateRange):
			h.logger.Warn("GET /schedule/export - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /schedule/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFormat)

		default:
			h.logger.Error("GET /schedule/export - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := fmt.Sprintf("schedule_%s_%s.%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat), format)

	switch format {
	case reservations.FormatCSV:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("GET /schedule/export - Write response: %v", err)
	}
}
