package find_nearest_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	reservationRepo "github.com/golab368/REPL-backend-tenis/internal/infra/storage/reservation"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// scanForward ищет ближайший свободный слот проходом вперед от from.
// Возвращает (nil, nil), когда до конца дня слот не помещается.
//
// Инварианты прохода:
//   - курсор только растет, слот раньше запрошенного времени не предлагается;
//   - бронь, идущая в момент курсора, сдвигает его на свой конец плюс
//     минутный буфер (новая бронь не может начаться в минуту, следующую
//     сразу за концом существующей);
//   - зазор до следующей брони должен вмещать длительность с тем же буфером:
//     nextStart - cursor - 1 >= duration;
//   - кандидат обязан закончиться не позже 23:59 той же даты.
//
// Каждая итерация продвигает курсор за конец хотя бы одной существующей
// брони, множество броней дня конечно, поэтому проход завершается
func scanForward(
	ctx context.Context,
	repo ReservationRepository,
	date time.Time,
	from types.TimeString,
	durationMinutes int,
) (*domain.Slot, error) {
	cursor := from

	for {
		// Бронь, активная в момент курсора (в том числе начавшаяся раньше
		// запрошенного времени), блокирует окно до своего конца
		probeEnd, err := cursor.AddMinutes(1)
		if err != nil {
			// Курсор уперся в конец суток
			return nil, nil
		}

		running, err := repo.FindOverlapping(ctx, date, cursor, probeEnd)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, fmt.Errorf("find overlapping at %s: %w", cursor, err)
		}
		if running != nil {
			cursor, err = running.EndTime.AddMinutes(domain.SlotBufferMinutes)
			if err != nil {
				return nil, nil
			}
			continue
		}

		next, err := repo.FindFirstFrom(ctx, date, cursor)
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			// Броней после курсора нет: слот доступен, если влезает в сутки
			return slotIfFits(date, cursor, durationMinutes)
		}
		if err != nil {
			return nil, fmt.Errorf("find first reservation from %s: %w", cursor, err)
		}

		gap, err := cursor.MinutesUntil(next.StartTime)
		if err != nil {
			return nil, fmt.Errorf("gap from %s to %s: %w", cursor, next.StartTime, err)
		}
		if gap-domain.SlotBufferMinutes >= durationMinutes {
			return slotIfFits(date, cursor, durationMinutes)
		}

		cursor, err = next.EndTime.AddMinutes(domain.SlotBufferMinutes)
		if err != nil {
			return nil, nil
		}
	}
}

func slotIfFits(date time.Time, start types.TimeString, durationMinutes int) (*domain.Slot, error) {
	slot, err := domain.NewSlot(date, start, durationMinutes)
	if err != nil {
		if errors.Is(err, types.ErrTimeOutOfDay) {
			return nil, nil
		}
		return nil, err
	}
	if !slot.FitsInDay() {
		return nil, nil
	}
	return &slot, nil
}
