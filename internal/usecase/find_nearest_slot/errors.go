package find_nearest_slot

import "errors"

var (
	// ErrNoSlotAvailable возвращается, когда до конца дня нет свободного
	// слота запрошенной длительности
	ErrNoSlotAvailable = errors.New("find_nearest_slot: no slot available that day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_nearest_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_nearest_slot: internal error")
)
