package cancel_reservation

import (
	"context"

	"github.com/golab368/REPL-backend-tenis/internal/service/reservations/models"
)

// ReservationsService сервис броней
type ReservationsService interface {
	CancelBySelection(ctx context.Context, name string, selection int) (*models.ReservationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
