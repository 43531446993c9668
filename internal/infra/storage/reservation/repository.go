package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	"github.com/golab368/REPL-backend-tenis/pkg/dbmetrics"
	"github.com/golab368/REPL-backend-tenis/pkg/psqlbuilder"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

const reservationColumns = "id, name, date, start_time, end_time, created_at"

// Repository репозиторий для работы с бронями корта
// Хранит брони с ключом (date, start_time) и отвечает на упорядоченные
// диапазонные запросы в пределах дня
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую бронь и возвращает её с присвоенным id
// Если в контексте передана активная транзакция, использует её:
// вставка при создании брони обязана выполняться в той же транзакции,
// что и проверка занятости слота
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("name", "date", "start_time", "end_time").
		Values(res.Name, res.Date, res.StartTime, res.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// FindFirstFrom возвращает самую раннюю бронь на дату с start_time >= from
// Возвращает ErrReservationNotFound, если таких броней нет
func (r *Repository) FindFirstFrom(ctx context.Context, date time.Time, from types.TimeString) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "date", "start_time", "end_time", "created_at").
		From("reservations").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		Where(squirrel.GtOrEq{"start_time": from}).
		OrderBy("start_time ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindFirstFrom - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanReservation(executor.QueryRowContext(ctx, query, args...), "FindFirstFrom")
}

// FindOverlapping возвращает любую бронь на дату, пересекающую
// полуоткрытый интервал [start, end): start_time < end AND end_time > start
// Возвращает ErrReservationNotFound при отсутствии пересечений
func (r *Repository) FindOverlapping(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "date", "start_time", "end_time", "created_at").
		From("reservations").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC").
		Limit(1)

	// В транзакции создания брони блокируем найденную строку
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanReservation(executor.QueryRowContext(ctx, query, args...), "FindOverlapping")
}

// CountForNameInRange возвращает количество броней имени в диапазоне дат
// (включительно с обеих сторон). Совпадение имени точное, с учетом регистра
func (r *Repository) CountForNameInRange(ctx context.Context, name string, dateStart, dateEnd time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.GtOrEq{"date": domain.DateOnly(dateStart)}).
		Where(squirrel.LtOrEq{"date": domain.DateOnly(dateEnd)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountForNameInRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForNameInRange - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByName возвращает все брони имени, упорядоченные по (date, start_time)
func (r *Repository) GetByName(ctx context.Context, name string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "date", "start_time", "end_time", "created_at").
		From("reservations").
		Where(squirrel.Eq{"name": name}).
		OrderBy("date ASC, start_time ASC")

	// Отмена по порядковому номеру резолвится в той же транзакции,
	// блокируем выбранные строки от конкурентного удаления
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "GetByName")
}

// DeleteExact удаляет бронь по точному ключу (name, date, start_time)
// и возвращает удаленную строку для подтверждающего сообщения
func (r *Repository) DeleteExact(ctx context.Context, name string, date time.Time, start types.TimeString) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		Where(squirrel.Eq{"start_time": start}).
		Suffix("RETURNING " + reservationColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DeleteExact - build delete query: %v", ErrBuildQuery, err)
	}

	return r.scanReservation(executor.QueryRowContext(ctx, query, args...), "DeleteExact")
}

// GetByDateRange возвращает брони в диапазоне дат (включительно),
// упорядоченные по (date, start_time). Используется расписанием и экспортом
func (r *Repository) GetByDateRange(ctx context.Context, dateStart, dateEnd time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "date", "start_time", "end_time", "created_at").
		From("reservations").
		Where(squirrel.GtOrEq{"date": domain.DateOnly(dateStart)}).
		Where(squirrel.LtOrEq{"date": domain.DateOnly(dateEnd)}).
		OrderBy("date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "GetByDateRange")
}

// scanReservation сканирует одну строку результата
func (r *Repository) scanReservation(row *sql.Row, op string) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(&res.ID, &res.Name, &res.Date, &res.StartTime, &res.EndTime, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows, op string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		if err := rows.Scan(&res.ID, &res.Name, &res.Date, &res.StartTime, &res.EndTime, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		res.CreatedAt = createdAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return reservations, nil
}
