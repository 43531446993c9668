package find_nearest_slot

import (
	"context"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	FindFirstFrom(ctx context.Context, date time.Time, from types.TimeString) (*domain.Reservation, error)
	FindOverlapping(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
