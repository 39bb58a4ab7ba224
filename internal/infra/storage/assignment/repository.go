package assignment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с назначениями номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает назначение номера бронированию.
// Вызывается только внутри сериализуемой транзакции подтверждения:
// создание назначения и проверка пересечений должны быть атомарны.
func (r *Repository) Create(ctx context.Context, a *domain.RoomAssignment) (*domain.RoomAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_assignments").
		Columns(
			"reservation_id",
			"room_id",
			"rate",
			"discount_amount",
			"extra_charges",
		).
		Values(
			a.ReservationID,
			a.RoomID,
			a.Rate,
			a.DiscountAmount,
			a.ExtraCharges,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// ListByReservation получает все назначения бронирования
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.RoomAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"room_id",
		"rate",
		"discount_amount",
		"extra_charges",
		"created_at",
		"updated_at",
	).
		From("room_assignments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]*domain.RoomAssignment, 0)

	for rows.Next() {
		var a domain.RoomAssignment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.ReservationID,
			&a.RoomID,
			&a.Rate,
			&a.DiscountAmount,
			&a.ExtraCharges,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time

		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}

// ListHolds получает удержания номеров, пересекающиеся с интервалом фильтра.
// Пересечение полуоткрытых интервалов: check_in < :checkOut AND check_out > :checkIn.
//
// Внутри транзакции строки бронирований блокируются (FOR UPDATE OF res):
// проверка доступности и создание назначения в одной сериализуемой
// транзакции исключают двойное бронирование (check-then-act гонка).
func (r *Repository) ListHolds(ctx context.Context, filter domain.HoldFilter) ([]*domain.RoomHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(filter.Statuses))
	for i, s := range filter.Statuses {
		statuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"ra.id",
		"ra.reservation_id",
		"ra.room_id",
		"res.status",
		"res.check_in_date",
		"res.check_out_date",
	).
		From("room_assignments ra").
		Join("reservations res ON res.id = ra.reservation_id").
		Where(squirrel.Eq{"res.status": statuses}).
		Where(squirrel.Lt{"res.check_in_date": filter.CheckOut}).
		Where(squirrel.Gt{"res.check_out_date": filter.CheckIn}).
		OrderBy("ra.room_id ASC", "ra.reservation_id ASC")

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"ra.room_id": filter.RoomIDs})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF res")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolds - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holds := make([]*domain.RoomHold, 0)

	for rows.Next() {
		var h domain.RoomHold

		err := rows.Scan(
			&h.AssignmentID,
			&h.ReservationID,
			&h.RoomID,
			&h.Status,
			&h.CheckInDate,
			&h.CheckOutDate,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListHolds - scan row: %v", ErrScanRow, err)
		}

		holds = append(holds, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolds - rows error: %v", ErrScanRow, err)
	}

	return holds, nil
}
