package find_nearest_slot

import (
	"context"
	"fmt"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
)

// UseCase use case поиска ближайшего свободного слота
// Детерминированный проход вперед от запрошенного времени: никогда
// не предлагает слот раньше изначально запрошенного начала
type UseCase struct {
	repo   ReservationRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{repo: repo, logger: logger}
}

// Execute ищет самый ранний слот со start >= req.From на дату req.Date,
// в который помещается полная длительность с учетом минутного буфера
// после конца каждой существующей брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Slot, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindNearestSlot: validation failed: %v", err)
		return nil, err
	}

	slot, err := scanForward(ctx, uc.repo, req.Date, req.From, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("FindNearestSlot: scan failed: %v", err)
		return nil, err
	}
	if slot == nil {
		uc.logger.Info("FindNearestSlot: no slot of %d minutes after %s on %s",
			req.DurationMinutes, req.From, req.Date.Format(domain.DateFormat))
		return nil, ErrNoSlotAvailable
	}

	uc.logger.Info("FindNearestSlot: found slot %s-%s on %s",
		slot.StartTime, slot.EndTime, req.Date.Format(domain.DateFormat))

	return slot, nil
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.From.IsZero() {
		return fmt.Errorf("%w: from time is required", ErrInvalidInput)
	}
	if err := req.From.Validate(); err != nil {
		return fmt.Errorf("%w: invalid from time: %v", ErrInvalidInput, err)
	}
	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration must be one of %v minutes", ErrInvalidInput, domain.AllowedDurations)
	}
	return nil
}
