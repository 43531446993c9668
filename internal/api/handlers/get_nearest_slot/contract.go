package get_nearest_slot

import (
	"context"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	findNearestSlot "github.com/golab368/REPL-backend-tenis/internal/usecase/find_nearest_slot"
)

type FindNearestSlotUseCase interface {
	Execute(ctx context.Context, req *findNearestSlot.Request) (*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
