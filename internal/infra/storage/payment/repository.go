package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// Repository журнал платежей. Только запись и чтение: платежи
// не редактируются и не удаляются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record добавляет платёж в журнал
func (r *Repository) Record(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"reservation_id",
			"amount",
			"method",
			"reference",
			"paid_at",
		).
		Values(
			p.ReservationID,
			p.Amount,
			p.Method,
			p.Reference,
			p.PaidAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// ListByReservation получает все платежи бронирования в порядке оплаты
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"amount",
		"method",
		"reference",
		"paid_at",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("paid_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)

	for rows.Next() {
		var p domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.ReservationID,
			&p.Amount,
			&p.Method,
			&p.Reference,
			&p.PaidAt,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time

		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// TotalPaid возвращает сумму всех платежей бронирования в минорных единицах
func (r *Repository) TotalPaid(ctx context.Context, reservationID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: TotalPaid - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: TotalPaid - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}
