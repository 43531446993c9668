package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// validateRequest валидирует структуру запроса до обращения к хранилищу
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration must be one of %v minutes, got %d",
			ErrInvalidDuration, domain.AllowedDurations, req.DurationMinutes)
	}

	return nil
}

// validateLeadTime проверяет, что начало брони строго больше чем через час.
// Заявка ровно за час отклоняется: start <= now + 1h -> отказ
func validateLeadTime(date time.Time, start types.TimeString, now time.Time) error {
	startAt, err := start.At(date)
	if err != nil {
		return fmt.Errorf("%w: combine date and time: %v", ErrInternal, err)
	}

	if !startAt.After(now.Add(domain.MinLeadTimeMinutes * time.Minute)) {
		return fmt.Errorf("%w: start must be at least %d minutes from now",
			ErrLeadTimeTooShort, domain.MinLeadTimeMinutes)
	}

	return nil
}

// computeEnd вычисляет конец слота; слот, пересекающий полночь, отклоняется
func computeEnd(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	// AddMinutes не выходит за 23:59, поэтому отдельная проверка
	// конца дня не нужна
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: %s + %d minutes crosses midnight",
			ErrInvalidTimeSlot, start, durationMinutes)
	}
	return end, nil
}
