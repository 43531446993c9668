package find_nearest_slot

import (
	"time"

	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// Request модель запроса на поиск ближайшего свободного слота
type Request struct {
	Date            time.Time        // Дата поиска (без времени)
	From            types.TimeString // Запрошенное время начала, раньше него не ищем
	DurationMinutes int              // Длительность слота
}
