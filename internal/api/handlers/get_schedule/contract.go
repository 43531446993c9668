package get_schedule

import (
	"context"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/service/reservations/models"
)

// ReservationsService сервис броней
type ReservationsService interface {
	GetSchedule(ctx context.Context, dateStart, dateEnd time.Time) (*models.ScheduleResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
