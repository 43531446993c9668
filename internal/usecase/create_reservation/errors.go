package create_reservation

import (
	"errors"
	"fmt"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
)

var (
	// ErrInvalidDuration возвращается, когда длительность не 30, 60 или 90 минут
	ErrInvalidDuration = errors.New("create_reservation: invalid duration")

	// ErrLeadTimeTooShort возвращается, когда начало брони меньше чем через
	// час от текущего момента (граница нестрогая: ровно час тоже отклоняется)
	ErrLeadTimeTooShort = errors.New("create_reservation: start must be more than one hour from now")

	// ErrInvalidTimeSlot возвращается, когда слот пересекал бы полночь
	ErrInvalidTimeSlot = errors.New("create_reservation: slot must end within the same day")

	// ErrSlotNotAvailable возвращается, когда запрошенный интервал пересекается
	// с существующей бронью. Конкретная ошибка (*SlotConflictError) несет
	// подсказку ближайшего свободного слота, если он есть в этот день
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrWeeklyQuotaExceeded возвращается, когда имя уже имеет две брони
	// в окне Пн-Сб недели запрошенной даты
	ErrWeeklyQuotaExceeded = errors.New("create_reservation: weekly reservation limit reached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// SlotConflictError конфликт с существующей бронью
// Suggested == nil означает, что до конца дня свободного слота нет
type SlotConflictError struct {
	Suggested *domain.Slot
}

// Error реализует интерфейс error
func (e *SlotConflictError) Error() string {
	if e.Suggested == nil {
		return fmt.Sprintf("%v: no alternative slot available that day", ErrSlotNotAvailable)
	}
	return fmt.Sprintf("%v: closest available slot is %s-%s",
		ErrSlotNotAvailable, e.Suggested.StartTime, e.Suggested.EndTime)
}

// Is делает errors.Is(err, ErrSlotNotAvailable) истинным для конфликтов
func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotNotAvailable
}
