package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	reservationRepo "github.com/golab368/REPL-backend-tenis/internal/infra/storage/reservation"
	"github.com/golab368/REPL-backend-tenis/internal/service/reservations/models"
)

// Service сервис для работы с существующими бронями: список по имени,
// отмена по порядковому номеру, расписание за диапазон дат
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// ListByName возвращает все брони имени, упорядоченные по (date, start_time)
// и пронумерованные с единицы. По этому списку вызывающая сторона выбирает
// номер для отмены
func (s *Service) ListByName(ctx context.Context, name string) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByName: fetching reservations for name=%q", name)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error("ListByName: repository error for name=%q: %v", name, err)
		return nil, fmt.Errorf("%w: ListByName - repository error: %v", ErrInternal, err)
	}

	if len(reservations) == 0 {
		s.logger.Warn("ListByName: no reservations for name=%q", name)
		return nil, ErrNoReservations
	}

	s.logger.Info("ListByName: found %d reservations for name=%q", len(reservations), name)
	return models.FromDomainReservationList(name, reservations), nil
}

// CancelBySelection отменяет бронь, выбранную порядковым номером в списке
// броней имени (1-индексация, сортировка по (date, start_time)).
//
// Список и удаление выполняются в одной транзакции: номер резолвится
// по тому же снимку, который видит вызывающая сторона, и удаляется ровно
// выбранный кортеж (name, date, start_time), а не N-я строка повторной
// выборки
func (s *Service) CancelBySelection(ctx context.Context, name string, selection int) (*models.ReservationResponse, error) {
	s.logger.Info("CancelBySelection: name=%q, selection=%d", name, selection)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	var cancelled *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservations, err := s.reservationRepo.GetByName(txCtx, name)
		if err != nil {
			s.logger.Error("CancelBySelection: repository error for name=%q: %v", name, err)
			return fmt.Errorf("%w: CancelBySelection - repository error: %v", ErrInternal, err)
		}

		if len(reservations) == 0 {
			s.logger.Warn("CancelBySelection: no reservations for name=%q", name)
			return ErrNoReservations
		}

		if selection < 1 || selection > len(reservations) {
			s.logger.Warn("CancelBySelection: selection %d out of range 1..%d for name=%q",
				selection, len(reservations), name)
			return fmt.Errorf("%w: selection %d is out of range 1..%d",
				ErrInvalidSelection, selection, len(reservations))
		}

		selected := reservations[selection-1]

		deleted, err := s.reservationRepo.DeleteExact(txCtx, selected.Name, selected.Date, selected.StartTime)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				// Строки заблокированы FOR UPDATE, сюда попадать не должны
				s.logger.Error("CancelBySelection: selected tuple vanished: name=%q, date=%s, start=%s",
					selected.Name, selected.Date.Format(domain.DateFormat), selected.StartTime)
				return fmt.Errorf("%w: selected reservation no longer exists", ErrInternal)
			}
			s.logger.Error("CancelBySelection: delete failed for name=%q: %v", name, err)
			return fmt.Errorf("%w: CancelBySelection - delete failed: %v", ErrInternal, err)
		}

		cancelled = deleted
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CancelBySelection: cancelled reservation id=%d for name=%q on %s %s-%s",
		cancelled.ID, name, cancelled.Date.Format(domain.DateFormat), cancelled.StartTime, cancelled.EndTime)

	resp := models.FromDomainReservation(cancelled)
	return &resp, nil
}

// GetSchedule возвращает расписание корта за диапазон дат (включительно),
// сгруппированное по дням
func (s *Service) GetSchedule(ctx context.Context, dateStart, dateEnd time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: range %s - %s",
		dateStart.Format(domain.DateFormat), dateEnd.Format(domain.DateFormat))

	if dateStart.IsZero() || dateEnd.IsZero() {
		return nil, fmt.Errorf("%w: both range bounds are required", ErrInvalidInput)
	}
	if dateEnd.Before(dateStart) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange,
			dateEnd.Format(domain.DateFormat), dateStart.Format(domain.DateFormat))
	}

	reservations, err := s.reservationRepo.GetByDateRange(ctx, dateStart, dateEnd)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: %d reservations in range", len(reservations))
	return models.GroupByDay(dateStart, dateEnd, reservations), nil
}
