package reservations

import (
	"context"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByName(ctx context.Context, name string) ([]*domain.Reservation, error)
	DeleteExact(ctx context.Context, name string, date time.Time, start types.TimeString) (*domain.Reservation, error)
	GetByDateRange(ctx context.Context, dateStart, dateEnd time.Time) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
