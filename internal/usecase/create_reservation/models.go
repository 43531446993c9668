package create_reservation

import (
	"time"

	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	Name            string           // Имя бронирующего (свободный текст)
	Date            time.Time        // Дата брони (без времени)
	StartTime       types.TimeString // Время начала слота (например, "15:00")
	DurationMinutes int              // Длительность: 30, 60 или 90
}

// Response модель ответа с созданной бронью
type Response struct {
	ID              int64            // ID созданной брони
	Name            string           // Имя бронирующего
	Date            time.Time        // Дата брони
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца (start + duration)
	DurationMinutes int              // Длительность в минутах
	CreatedAt       time.Time        // Время создания
}
