package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	reservationRepo "github.com/golab368/REPL-backend-tenis/internal/infra/storage/reservation"
	findNearestSlot "github.com/golab368/REPL-backend-tenis/internal/usecase/find_nearest_slot"
)

// UseCase use case создания брони корта
// Проверка занятости, подбор альтернативы, недельная квота и вставка
// выполняются в одной serializable транзакции, чтобы две конкурентные
// заявки на пересекающиеся слоты не прошли обе
type UseCase struct {
	reservationRepo ReservationRepository
	slotFinder      NearestSlotFinder
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotFinder NearestSlotFinder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotFinder:      slotFinder,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: name=%q, date=%s, time=%s, duration=%d",
		req.Name, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация структуры запроса (длительность, формат времени)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Минимальный интервал до начала брони
	now := uc.timeProvider.Now()
	if err := validateLeadTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: lead time check failed: %v", err)
		return nil, err
	}

	// 3. Конец слота; пересекающий полночь слот отклоняется
	end, err := computeEnd(req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 4. Проверка занятости и вставка в одной serializable транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Прямая проверка конфликта: полуоткрытые интервалы
		// пересекаются, если s1 < e2 и s2 < e1
		conflicting, err := uc.reservationRepo.FindOverlapping(txCtx, req.Date, req.StartTime, end)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: overlap check failed: %v", err)
			return fmt.Errorf("%w: overlap check: %v", ErrInternal, err)
		}

		if conflicting != nil {
			uc.logger.Warn("CreateReservation: slot %s-%s conflicts with reservation id=%d (%s-%s)",
				req.StartTime, end, conflicting.ID, conflicting.StartTime, conflicting.EndTime)
			return uc.buildConflictError(txCtx, req)
		}

		// 4.2. Недельная квота: проверяется только после подтверждения
		// доступности слота, поэтому отказ по квоте никогда не опережает
		// отказ по конфликту
		if err := uc.checkWeeklyQuota(txCtx, req); err != nil {
			return err
		}

		// 4.3. Фиксация брони
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Name:      req.Name,
			Date:      domain.DateOnly(req.Date),
			StartTime: req.StartTime,
			EndTime:   end,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: insert failed: %v", err)
			return fmt.Errorf("%w: insert reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		Name:            result.Name,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// buildConflictError подбирает ближайший свободный слот того же дня
// и оборачивает его в SlotConflictError
func (uc *UseCase) buildConflictError(ctx context.Context, req *Request) error {
	suggested, err := uc.slotFinder.Execute(ctx, &findNearestSlot.Request{
		Date:            req.Date,
		From:            req.StartTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil && !errors.Is(err, findNearestSlot.ErrNoSlotAvailable) {
		uc.logger.Error("CreateReservation: nearest slot search failed: %v", err)
		return fmt.Errorf("%w: nearest slot search: %v", ErrInternal, err)
	}

	if suggested == nil {
		uc.logger.Info("CreateReservation: no alternative slot available on %s",
			req.Date.Format(domain.DateFormat))
	} else {
		uc.logger.Info("CreateReservation: suggesting alternative slot %s-%s",
			suggested.StartTime, suggested.EndTime)
	}

	return &SlotConflictError{Suggested: suggested}
}

// checkWeeklyQuota проверяет лимит броней имени в окне Пн-Сб недели
// запрошенной даты. Воскресная дата лежит вне окна и квотой не ограничена
func (uc *UseCase) checkWeeklyQuota(ctx context.Context, req *Request) error {
	weekStart, weekEnd := domain.QuotaWindow(req.Date)

	if domain.DateOnly(req.Date).After(weekEnd) {
		return nil
	}

	count, err := uc.reservationRepo.CountForNameInRange(ctx, req.Name, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("CreateReservation: quota count failed: %v", err)
		return fmt.Errorf("%w: quota count: %v", ErrInternal, err)
	}

	if count >= domain.MaxReservationsPerWeek {
		uc.logger.Warn("CreateReservation: name=%q already has %d reservations in week %s - %s",
			req.Name, count, weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat))
		return ErrWeeklyQuotaExceeded
	}

	return nil
}
