package create_reservation

import (
	"context"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	findNearestSlot "github.com/golab368/REPL-backend-tenis/internal/usecase/find_nearest_slot"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindOverlapping(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Reservation, error)
	CountForNameInRange(ctx context.Context, name string, dateStart, dateEnd time.Time) (int, error)
}

// NearestSlotFinder интерфейс поиска ближайшего свободного слота
// Используется для подсказки альтернативы при конфликте
type NearestSlotFinder interface {
	Execute(ctx context.Context, req *findNearestSlot.Request) (*domain.Slot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
