package export_schedule

import (
	"context"
	"io"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/service/reservations"
)

// ReservationsService сервис броней
type ReservationsService interface {
	ExportSchedule(ctx context.Context, dateStart, dateEnd time.Time, format reservations.ExportFormat, w io.Writer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
