package reservations

import "errors"

var (
	// ErrNoReservations возвращается, когда у имени нет ни одной брони
	ErrNoReservations = errors.New("no reservations found for this name")

	// ErrInvalidSelection возвращается, когда порядковый номер вне
	// диапазона показанного списка
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
