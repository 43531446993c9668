package get_user_reservations

import (
	"context"

	"github.com/golab368/REPL-backend-tenis/internal/service/reservations/models"
)

// ReservationsService сервис броней
type ReservationsService interface {
	ListByName(ctx context.Context, name string) (*models.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
